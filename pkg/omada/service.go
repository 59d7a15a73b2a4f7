// Package omada implements the authenticated request pipeline for a
// TP-Link Omada controller's OpenAPI: token acquisition and refresh,
// dispatch with transparent re-authentication, page aggregation, and
// single-entity resolution over the aggregated collections.
package omada

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/omada-tools/omada-mcp/pkg/config"
)

// defaultSessionInvalidCodes are the controller error codes that mean the
// token a request carried is no longer honored. They trigger the same
// re-authenticate-and-replay path as an HTTP 401/403. The set is
// overridable through configuration.
var defaultSessionInvalidCodes = []int{-44106, -44111, -44112}

// Service talks to one Omada controller on behalf of one set of client
// credentials. It owns the access token lifecycle and is safe for
// concurrent use.
type Service struct {
	baseURL      string
	omadacID     string
	clientID     string
	clientSecret string
	defaultSite  string
	pageSize     int

	sessionInvalid map[int]struct{}

	httpClient *http.Client

	mu   sync.Mutex
	sess session

	// now is the clock used for expiry checks; tests substitute it.
	now func() time.Time
}

// NewService builds a Service from validated configuration. The underlying
// HTTP client is created once: per-request timeout, optional proxy, and
// the TLS-verification toggle controllers with self-signed certificates
// need.
func NewService(cfg *config.Config) (*Service, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !cfg.VerifyTLS,
		},
	}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	codes := cfg.SessionInvalidCodes
	if len(codes) == 0 {
		codes = defaultSessionInvalidCodes
	}
	invalid := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		invalid[c] = struct{}{}
	}

	return &Service{
		baseURL:        cfg.BaseURL,
		omadacID:       cfg.OmadacID,
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		defaultSite:    cfg.SiteID,
		pageSize:       cfg.PageSize,
		sessionInvalid: invalid,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: transport,
		},
		now: time.Now,
	}, nil
}

// ControllerID returns the controller identifier the credentials belong to.
func (s *Service) ControllerID() string { return s.omadacID }

// DefaultSite returns the configured default site id, which may be empty.
func (s *Service) DefaultSite() string { return s.defaultSite }

// SessionState reports the token lifecycle phase: "unauthenticated" before
// the first grant, "authenticated" while a usable token is held, "expired"
// once the clock passes the buffered expiry.
func (s *Service) SessionState() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.sess.accessToken == "":
		return "unauthenticated"
	case s.now().Before(s.sess.expiresAt):
		return "authenticated"
	default:
		return "expired"
	}
}

// apiPath builds a controller-scoped OpenAPI path from single segments,
// escaping each one.
func (s *Service) apiPath(parts ...string) string {
	p := "/openapi/v1/" + url.PathEscape(s.omadacID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}
