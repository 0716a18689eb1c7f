package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestUserIDFromToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "numeric user_id", token: signedToken(t, jwt.MapClaims{"user_id": 35, "exp": 1760329807.495069}), want: "35"},
		{name: "string user_id", token: signedToken(t, jwt.MapClaims{"user_id": "u-1"}), want: "u-1"},
		{name: "subject fallback", token: signedToken(t, jwt.MapClaims{"sub": "42"}), want: "42"},
		{name: "no id claims", token: signedToken(t, jwt.MapClaims{"scope": "all"}), want: ""},
		{name: "opaque token", token: "not-a-jwt", want: ""},
		{name: "empty", token: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userIDFromToken(tt.token))
		})
	}
}
