package partner

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyReachableLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	verifier := NewLinkVerifier("", time.Second)
	result := verifier.Verify(server.URL + "/aff/abc123")

	assert.True(t, result.Valid)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Empty(t, result.Error)
}

func TestVerifyDeadLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	verifier := NewLinkVerifier("", time.Second)
	result := verifier.Verify(server.URL + "/aff/gone")

	assert.False(t, result.Valid)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, result.Error, "404")
}

func TestVerifyUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	verifier := NewLinkVerifier("", time.Second)
	result := verifier.Verify(serverURL + "/aff/abc")

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "unreachable")
}

func TestVerifyRejectsMalformedURL(t *testing.T) {
	verifier := NewLinkVerifier("partner.example.com", time.Second)

	assert.False(t, verifier.Verify("not a url").Valid)
	assert.False(t, verifier.Verify("").Valid)
}

func TestVerifyRejectsBadScheme(t *testing.T) {
	verifier := NewLinkVerifier("partner.example.com", time.Second)

	result := verifier.Verify("ftp://partner.example.com/aff/abc")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "scheme")
}

func TestVerifyRejectsForeignDomain(t *testing.T) {
	verifier := NewLinkVerifier("partner.example.com", time.Second)

	result := verifier.Verify("https://evil.example.org/aff/abc")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "partner domain")
}

func TestVerifyAllowsSubdomain(t *testing.T) {
	// No server behind it, so reachability fails, but the domain check passes.
	verifier := NewLinkVerifier("invalid.test", 100*time.Millisecond)

	result := verifier.Verify("https://shop.invalid.test/aff/abc")
	assert.NotContains(t, result.Error, "partner domain")
}
