// Package jwtclaims decodes JWT payloads for display purposes only.
//
// The client never verifies signatures; that is the backend's job.
// Claims extracted here feed UI concerns like the greeting name and the
// account email shown on the settings page, nothing security-relevant.
package jwtclaims

import (
	"github.com/golang-jwt/jwt/v5"
)

// Decode returns the token's claims without verifying its signature.
// Any malformed token yields an empty claim set rather than an error,
// so callers can always fall through to their next name source.
func Decode(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return jwt.MapClaims{}
	}
	return claims
}

// DisplayName resolves a human-readable name from token claims, name
// before userName. The sub claim is deliberately excluded: it holds
// the account email, and showing a raw email as a greeting name is the
// caller's last-resort fallback (local part only), not this function's.
func DisplayName(claims jwt.MapClaims) string {
	for _, key := range []string{"name", "userName"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Subject returns the sub claim (the account email in this backend's
// tokens), or empty.
func Subject(claims jwt.MapClaims) string {
	if v, ok := claims["sub"].(string); ok {
		return v
	}
	return ""
}
