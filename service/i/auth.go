package i

// ClientAuthenticator issues API tokens to known clients.
type ClientAuthenticator interface {
	// IssueToken returns a signed token when the secret matches the client's.
	IssueToken(clientID, secret string) (string, error)
}
