package partner

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VerificationResult reports whether a candidate affiliate URL is usable for
// attribution: well formed, on the partner domain, and reachable.
type VerificationResult struct {
	Valid      bool   `json:"valid"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

type LinkVerifier struct {
	partnerDomain string
	client        *http.Client
}

func NewLinkVerifier(partnerDomain string, timeout time.Duration) *LinkVerifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LinkVerifier{
		partnerDomain: strings.ToLower(partnerDomain),
		// The default client follows redirects, which partner short links use.
		client: &http.Client{Timeout: timeout},
	}
}

func (v *LinkVerifier) Verify(rawURL string) *VerificationResult {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return &VerificationResult{Error: "not a valid URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &VerificationResult{Error: "unsupported URL scheme: " + parsed.Scheme}
	}

	if v.partnerDomain != "" {
		host := strings.ToLower(parsed.Hostname())
		if host != v.partnerDomain && !strings.HasSuffix(host, "."+v.partnerDomain) {
			return &VerificationResult{Error: fmt.Sprintf("host %s is not on partner domain %s", host, v.partnerDomain)}
		}
	}

	response, err := v.client.Head(rawURL)
	if err != nil {
		return &VerificationResult{Error: "link unreachable: " + err.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return &VerificationResult{
			StatusCode: response.StatusCode,
			Error:      fmt.Sprintf("link returned status %d", response.StatusCode),
		}
	}
	return &VerificationResult{Valid: true, StatusCode: response.StatusCode}
}
