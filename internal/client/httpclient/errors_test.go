package httpclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		code         int
		unauthorized bool
		notFound     bool
	}{
		{401, true, false},
		{403, true, false},
		{404, false, true},
		{400, false, false},
		{500, false, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.code})
			assert.Equal(t, tt.unauthorized, errors.Is(err, ErrUnauthorized))
			assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "api error 400: Email already registered", (&APIError{StatusCode: 400, Detail: "Email already registered"}).Error())
	assert.Equal(t, "api error 500: Internal Server Error", (&APIError{StatusCode: 500}).Error())
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"Invalid email or password"}`, want: "Invalid email or password"},
		{name: "validation list", body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"msg":"field required"}]}`, want: "value is not a valid email address; field required"},
		{name: "no detail", body: `{"error":"x"}`, want: ""},
		{name: "object detail", body: `{"detail":{"code":1}}`, want: ""},
		{name: "not json", body: `Internal Server Error`, want: ""},
		{name: "empty", body: ``, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail([]byte(tt.body)))
		})
	}
}

func TestDetail_NonAPIError(t *testing.T) {
	assert.Empty(t, Detail(errors.New("boom")))
	assert.Empty(t, Detail(nil))
}
