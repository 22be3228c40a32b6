package models

// LoginRequest opens a session. Passhash is the digest produced by the
// password hasher; for a blank password it is the empty string, not the
// hash of "".
type LoginRequest struct {
	Username string `json:"username"`
	Passhash string `json:"passhash"`
}

// PasshashRequest sets a user's password, both when creating the user and
// when updating the caller's own.
type PasshashRequest struct {
	Passhash string `json:"passhash"`
}

// DefaultEnvRequest sets the caller's default environment.
type DefaultEnvRequest struct {
	Env string `json:"env"`
}

// GrantRequest assigns User the given rights level on Env. Rights travels
// as a plain integer.
type GrantRequest struct {
	Env    string `json:"env"`
	User   string `json:"user"`
	Rights int    `json:"rights"`
}
