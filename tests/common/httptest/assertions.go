//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertMessageResponse checks the webhook envelope: always 201 Created with
// a single message field carrying the outcome.
func AssertMessageResponse(t *testing.T, w *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()

	if !assert.Equal(t, http.StatusCreated, w.Code,
		fmt.Sprintf("Expected status 201, got %d. Response: %s", w.Code, w.Body.String())) {
		return
	}

	var resp struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.Equal(t, expectedMessage, resp.Message)
}
