package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// userIDFromToken reads the user_id claim (or sub) from a JWT without
// verifying it. The client has no key to verify with; the value is only a
// label for the session. Opaque or malformed tokens yield "".
func userIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	switch v := claims["user_id"].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}

	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
