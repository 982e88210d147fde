package identity

// TokenRequest carries API client credentials.
type TokenRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
