package models

// Template represents a project's Remote Config template: the full set of
// parameters, conditions, and parameter groups published for the project,
// together with the version metadata of the currently active template.
//
// A Template is instantiated fresh for every successful fetch. The ETag is
// attached by the client after the body has been decoded and is required for
// any later conditional update of the template.
type Template struct {
	// Parameters maps parameter keys to their value configuration.
	Parameters map[string]Parameter `json:"parameters,omitempty"`

	// Conditions is the ordered list of named conditions referenced by
	// conditional parameter values. Order matters: the service evaluates
	// conditions by priority, first match wins.
	Conditions []Condition `json:"conditions,omitempty"`

	// ParameterGroups maps group names to grouped parameters. Groups are a
	// console organisational aid and carry no evaluation semantics.
	ParameterGroups map[string]ParameterGroup `json:"parameterGroups,omitempty"`

	// Version holds metadata about the published template version.
	Version *Version `json:"version,omitempty"`

	// ETag is the opaque version token returned by the service in the `etag`
	// response header. It is not part of the template body and is populated
	// by the client after a successful fetch.
	ETag string `json:"-"`
}

// Parameter is a single Remote Config parameter: a default value, optional
// per-condition overrides, and an optional description.
type Parameter struct {
	// DefaultValue is served when no condition matches. May be nil if the
	// parameter has conditional values only.
	DefaultValue *ParameterValue `json:"defaultValue,omitempty"`

	// ConditionalValues maps condition names to the value served when that
	// condition evaluates to true.
	ConditionalValues map[string]ParameterValue `json:"conditionalValues,omitempty"`

	// Description is shown in the Firebase console; not served to clients.
	Description string `json:"description,omitempty"`
}

// ParameterValue is either an explicit string value or an instruction to use
// the client-side in-app default. Exactly one of the two fields is set.
type ParameterValue struct {
	Value           string `json:"value,omitempty"`
	UseInAppDefault *bool  `json:"useInAppDefault,omitempty"`
}

// Condition is a named targeting condition.
type Condition struct {
	// Name uniquely identifies the condition within the template.
	Name string `json:"name"`

	// Expression is the targeting expression evaluated by the service.
	Expression string `json:"expression"`

	// TagColor is the console display colour for the condition tag.
	TagColor string `json:"tagColor,omitempty"`
}

// ParameterGroup is a named collection of parameters with an optional
// description.
type ParameterGroup struct {
	Description string               `json:"description,omitempty"`
	Parameters  map[string]Parameter `json:"parameters,omitempty"`
}

// Version carries metadata about one published template version.
type Version struct {
	VersionNumber  string      `json:"versionNumber,omitempty"`
	UpdateTime     string      `json:"updateTime,omitempty"`
	UpdateUser     *UpdateUser `json:"updateUser,omitempty"`
	Description    string      `json:"description,omitempty"`
	UpdateOrigin   string      `json:"updateOrigin,omitempty"`
	UpdateType     string      `json:"updateType,omitempty"`
	RollbackSource string      `json:"rollbackSource,omitempty"`
	IsLegacy       bool        `json:"isLegacy,omitempty"`
}

// UpdateUser identifies the account that published a template version.
type UpdateUser struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
