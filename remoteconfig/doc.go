// Package remoteconfig provides the client binding for the Firebase Remote
// Config REST service.
//
// The primary type is [Client], constructed via [NewClient] with a project id
// and an authenticated transport. [Client.FetchTemplate] retrieves the
// project's current template together with its ETag version token.
//
// Failures are reported as a typed [*Error] that carries the vendor error
// code extracted from the service's error envelope when one is present;
// callers match it with [errors.As] and inspect [Error.ErrorCode]. Template
// update, publish, and rollback operations are not implemented by this
// package.
package remoteconfig
