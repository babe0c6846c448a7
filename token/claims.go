// Package token extracts advisory claims from the platform's bearer tokens.
//
// Nothing here verifies a signature or an expiry. Authorization is enforced
// by the backend on every API call; the decoded values exist purely for
// display (showing the signed-in email) and as a default tenant selection.
// They must never gate an access-control decision.
package token

import (
	"strconv"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is the unverified view of a bearer token's payload. Any claims
// beyond these are ignored by this layer.
type Claims struct {
	TenantID *int64
	Email    string
}

// DecodeClaims parses the payload segment of raw without verifying it.
// It returns nil on any malformed input: missing segment, invalid base64,
// invalid JSON. Callers treat nil as "no claims available", which is not an
// error condition for the session.
func DecodeClaims(raw string) *Claims {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil
	}
	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil
	}

	claims := &Claims{}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	switch v := mapClaims["tenant_id"].(type) {
	case float64:
		id := int64(v)
		claims.TenantID = &id
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			claims.TenantID = &id
		}
	}
	return claims
}
