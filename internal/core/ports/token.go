package ports

// TokenIssuer mints a signed, time-limited token asserting a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// TokenVerifier checks a token's signature and expiry and returns the user id
// it asserts. Failures are domain.ErrTokenExpired or domain.ErrTokenMalformed.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
