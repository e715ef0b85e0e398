package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
)

// Inspector reads claims out of bearer tokens the services mint. Signature
// verification stays server-side; the client only checks whether a cached
// token is worth sending at all.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// CheckUsable reports whether the token parses and has not expired as of now.
// Tokens without an exp claim are treated as usable; the server is the
// authority either way.
func (i *Inspector) CheckUsable(tokenString string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return ErrMalformedToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return ErrMalformedToken
	}
	if exp != nil && !now.Before(exp.Time) {
		return ErrExpiredToken
	}
	return nil
}

// Subject extracts the sub claim without verifying the signature.
func (i *Inspector) Subject(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return "", ErrMalformedToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", ErrMalformedToken
	}
	return sub, nil
}
