package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  *string `json:"name"  validate:"omitempty,max=5"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","extra":1}`))
		var v sampleRequest
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &v))
		assert.Equal(t, "a@b.co", v.Email)
	})

	t.Run("empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var v sampleRequest
		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), req, &v), ErrEmptyBody)
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var v sampleRequest
		err := DecodeJSON(httptest.NewRecorder(), req, &v)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("too large", func(t *testing.T) {
		body := `{"email":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var v sampleRequest
		assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &v))
	})
}

func TestValidationMessage(t *testing.T) {
	t.Parallel()

	long := "toolong"
	tests := []struct {
		name string
		req  sampleRequest
		want string
	}{
		{"missing", sampleRequest{}, "Invalid email: required field"},
		{"bad email", sampleRequest{Email: "nope"}, "Invalid email: invalid email format"},
		{"too long", sampleRequest{Email: "a@b.co", Name: &long}, "Invalid name: too long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.want, ValidationMessage(err))
		})
	}

	assert.NoError(t, ValidateRequest(sampleRequest{Email: "a@b.co"}))
	assert.Empty(t, ValidationMessage(assert.AnError))
}
