package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on requests to protected routes.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value inside the Authorization header.
const BearerPrefix = "Bearer "
