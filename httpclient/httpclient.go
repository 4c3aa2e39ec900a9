package httpclient

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/sosportal/portal/config"
	"golang.org/x/time/rate"
)

// New returns the client shared by every REST collaborator. Outgoing requests are
// throttled by a token bucket and bounded by the configured timeout.
func New(cfg *config.Config) *http.Client {
	limit := rate.Limit(cfg.HttpRateLimit)
	if cfg.HttpRateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.HttpRateBurst
	if burst < 1 {
		burst = 1
	}

	return &http.Client{
		Timeout: cfg.HttpTimeout,
		Transport: &rateLimitedTransport{
			base:    http.DefaultTransport,
			limiter: rate.NewLimiter(limit, burst),
		},
	}
}

type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// ServerUrl parses the base url of a REST api. A trailing slash is added so that
// operation paths resolve below any path prefix of the base.
func ServerUrl(server string) (*url.URL, error) {
	if !strings.HasSuffix(server, "/") {
		server += "/"
	}
	return url.Parse(server)
}

// OperationUrl resolves operationPath relative to serverUrl
func OperationUrl(serverUrl *url.URL, operationPath string) (*url.URL, error) {
	if strings.HasPrefix(operationPath, "/") {
		operationPath = "." + operationPath
	}
	return serverUrl.Parse(operationPath)
}
