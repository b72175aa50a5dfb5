package common

// AuthorizationHeaderName carries the bearer credential on HTTP requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme names the authorization scheme of session tokens. Schemes
// compare case-insensitively.
const BearerScheme = "Bearer"
