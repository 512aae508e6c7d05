package common

// AuthHeaderName is the HTTP header carrying the bearer token.
const AuthHeaderName = "Authorization"

// BearerPrefix is the required scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "
