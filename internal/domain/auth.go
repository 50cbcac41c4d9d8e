package domain

// TokenVerifier validates bearer tokens issued by the external auth service
// and returns the authenticated user ID. Token issuance lives outside this
// service.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
