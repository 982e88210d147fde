package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/beka-birhanu/labyrinth/service/i"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = 24 * time.Hour
)

var (
	ErrInvalidClient = errors.New("invalid client id or secret")
)

// ClientAuth checks API client credentials and issues tokens.
type ClientAuth struct {
	clientID   string
	secretHash []byte
	tokenizer  i.Tokenizer
	ttl        time.Duration
}

// NewClientAuth creates a ClientAuth for a single client whose secret is stored as a bcrypt hash.
func NewClientAuth(clientID, secretHash string, tokenizer i.Tokenizer) (*ClientAuth, error) {
	if clientID == "" || secretHash == "" {
		return nil, errors.New("client id and secret hash are required")
	}
	if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
		return nil, err
	}

	return &ClientAuth{
		clientID:   clientID,
		secretHash: []byte(secretHash),
		tokenizer:  tokenizer,
		ttl:        defaultTokenTTL,
	}, nil
}

// IssueToken returns a token for the client when the secret matches.
func (a *ClientAuth) IssueToken(clientID, secret string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(clientID), []byte(a.clientID)) != 1 {
		return "", ErrInvalidClient
	}
	if err := bcrypt.CompareHashAndPassword(a.secretHash, []byte(secret)); err != nil {
		return "", ErrInvalidClient
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"clientID": clientID,
	}, a.ttl)
}
