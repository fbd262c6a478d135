package domain

// TokenVerifier verifies a bearer credential issued by the identity provider
// and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
