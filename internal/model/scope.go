package model

// Scope carries the authenticated identity of the current request.
// It is populated by middleware from the identity the auth layer forwards.
type Scope struct {
	UserID string
}
