// Package test contains helpers for tests across the backend.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/router"
	"github.com/stretchr/testify/assert"
)

// TmpFile returns the path to a file in a temporary directory that is
// cleaned up after the test. Use it as the sqlite database for one test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "finance.db")
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, url string, body io.Reader, headers ...map[string]string) httptest.ResponseRecorder {
	r, err := router.Router()
	if err != nil {
		assert.FailNow(t, "Router could not be initialized")
	}

	if body == nil {
		body = bytes.NewBuffer(nil)
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, body)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
