package session

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Credential is a bearer token together with the claims the client reads.
// A zero ExpiresAt means the token carried no exp and is never valid.
type Credential struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// ValidAt reports whether exp is strictly after now.
func (c Credential) ValidAt(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.After(now)
}

var parser = jwt.NewParser(jwt.WithoutClaimsValidation())

// ParseToken decodes the payload of a JWT without checking its signature.
func ParseToken(token string) (Credential, error) {
	if token == "" {
		return Credential{}, fmt.Errorf("%w: empty token", common.ErrInvalidToken)
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Credential{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	cred := Credential{Token: token, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		cred.ExpiresAt = claims.ExpiresAt.Time
	}
	return cred, nil
}
