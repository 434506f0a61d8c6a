package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/revisaai/revisaai/internal/config"
	"github.com/revisaai/revisaai/pkg/middleware"
)

// Verifier accepts ID tokens from an external OpenID Connect provider, so
// users signed in there can call the API alongside locally issued tokens.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the provider at cfg.Issuer.
func NewVerifier(ctx context.Context, cfg config.OIDCConfig) (*Verifier, error) {
	if cfg.Issuer == "" || cfg.ClientID == "" {
		return nil, fmt.Errorf("oidc issuer and client id are required")
	}
	provider, err := oidc.NewProvider(ctx, strings.TrimRight(cfg.Issuer, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &Verifier{verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})}, nil
}

// Verify checks signature, issuer, audience and expiry. Tokens without a
// subject are refused since the API keys users and rate limits on it.
func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	tok, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("oidc: %w", err)
	}
	if tok.Subject == "" {
		return nil, errors.New("oidc: token has no subject")
	}
	return tok, nil
}
