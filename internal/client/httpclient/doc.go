// Package httpclient is the thin HTTP layer every backend call goes through.
//
// # Overview
//
// Client resolves request paths against a base URL, encodes and decodes JSON
// bodies, and attaches "Authorization: Bearer <token>" to every request
// except the login and registration endpoints. The token comes from a
// TokenSource, normally the session store, and is read per request so a
// login or logout takes effect on the next call.
//
// # Error Handling
//
// There is no retry, no token refresh and no timeout policy beyond the
// caller's context. Transport failures are returned wrapped with %w. Non-2xx
// responses become *APIError, which carries the backend's "detail" message
// and matches ErrUnauthorized (401, 403) and ErrNotFound (404) via errors.Is.
package httpclient
