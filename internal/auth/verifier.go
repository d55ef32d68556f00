// Package auth verifies Google ID tokens and tracks signed-in sessions.
package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"

	"ideaforge/internal/core"
)

// ErrInvalidToken is returned when an ID token fails verification.
var ErrInvalidToken = errors.New("invalid identity token")

// ErrNoClientID is returned when verification is attempted without a
// configured OAuth client id.
var ErrNoClientID = errors.New("google client id is not configured")

// Verifier validates Google-issued ID tokens against the configured OAuth
// client id and extracts the user identity.
type Verifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewVerifier creates a Verifier for the given OAuth client id.
func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID, validate: idtoken.Validate}
}

// Verify checks the ID token's signature and audience, returning the user it
// identifies. The provider subject claim becomes the user id.
func (v *Verifier) Verify(ctx context.Context, token string) (*core.User, error) {
	if v.clientID == "" {
		return nil, ErrNoClientID
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	return &core.User{
		ID:      payload.Subject,
		Email:   claimString(payload, "email"),
		Name:    claimString(payload, "name"),
		Picture: claimString(payload, "picture"),
	}, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}
