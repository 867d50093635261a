package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoJSON sends a request to handler with body marshalled as JSON and, when
// token is non-empty, a bearer Authorization header.
func DoJSON(
	t *testing.T,
	handler http.Handler,
	method, path, token string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeResponse asserts the status code and unmarshals the JSON body into out.
func DecodeResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, out interface{}) {
	t.Helper()

	require.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "failed to unmarshal response: %s", rec.Body.String())
}

// AssertErrorResponse checks that a response carries the expected status and
// an error message containing expectedErrorMsgPart.
func AssertErrorResponse(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp), "failed to unmarshal error response")
	assert.Contains(t, errResp.Error, expectedErrorMsgPart)
}
