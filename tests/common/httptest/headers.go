//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks response headers. An empty expected value means the
// header must be absent.
func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		got, present := rec.Header()[http.CanonicalHeaderKey(name)]
		if want == "" {
			assert.False(t, present, "header %s should be absent, got %v", name, got)
			continue
		}
		assert.Equal(t, want, rec.Header().Get(name), "header %s mismatch", name)
	}
}
