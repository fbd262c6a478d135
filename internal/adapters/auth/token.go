package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"devevents/internal/domain"
)

// VerifierConfig selects how bearer tokens are checked. Exactly one of Secret
// (HS256) or PublicKeyPEM (RS256) is expected; when both are set the public key wins.
type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

type jwtVerifier struct {
	method jwt.SigningMethod
	key    any
	parser *jwt.Parser
}

// NewJWTVerifier returns a TokenVerifier for tokens minted by the identity provider.
func NewJWTVerifier(cfg VerifierConfig) (domain.TokenVerifier, error) {
	v := &jwtVerifier{}
	switch {
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse jwt public key: %w", err)
		}
		v.method, v.key = jwt.SigningMethodRS256, key
	case cfg.Secret != "":
		v.method, v.key = jwt.SigningMethodHS256, []byte(cfg.Secret)
	default:
		return nil, errors.New("jwt verifier needs a secret or a public key")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify parses and validates the token and returns its subject.
func (v *jwtVerifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", domain.ErrUnauthenticated
	}
	claims := &jwt.RegisteredClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", domain.ErrUnauthenticated)
	}
	return claims.Subject, nil
}
