// Package transport provides the authenticated HTTP client shared by all SDK
// service bindings.
//
// The package wires three concerns into a single [HTTPClient]:
//   - SDK identification via the X-Firebase-Client header;
//   - OAuth2 bearer-token injection from a [golang.org/x/oauth2.TokenSource],
//     typically obtained through [Credentials];
//   - request/response diagnostics logged at debug level without ever
//     touching bodies or tokens.
//
// Connection lifecycle (dialing, pooling, closing) is owned entirely by the
// embedded resty client. No retries are performed at this layer.
package transport
