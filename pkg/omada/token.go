package omada

import (
	"context"
	"net/http"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/rs/zerolog/log"
)

const (
	authorizePath = "/openapi/authorize/token"

	grantClientCredentials = "client_credentials"
	grantRefreshToken      = "refresh_token"

	// tokenExpiryMargin is subtracted from the lifetime the controller
	// declares so a token handed out is never about to expire mid-request.
	tokenExpiryMargin = 60 * time.Second
)

// session is the mutable authentication state, guarded by Service.mu.
type session struct {
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

type credentialsGrantBody struct {
	OmadacID     string `json:"omadacId"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type refreshGrantBody struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

// authEnvelope is the response envelope of the token endpoint with its
// result decoded in one shot.
type authEnvelope struct {
	ErrorCode int         `json:"errorCode"`
	Msg       string      `json:"msg"`
	Result    tokenResult `json:"result"`
}

// ensureValidToken returns an access token that is good for at least the
// expiry margin. The mutex is held across the grant round trip, so
// concurrent callers that all observe an expired token block here and
// share the outcome of a single grant instead of racing their own.
func (s *Service) ensureValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.accessToken != "" && s.now().Before(s.sess.expiresAt) {
		return s.sess.accessToken, nil
	}

	if s.sess.refreshToken != "" {
		err := s.refreshSession(ctx)
		if err == nil {
			return s.sess.accessToken, nil
		}
		log.Warn().Err(err).Msg("Token refresh failed, falling back to credentials grant")
	}

	// One fresh grant, no further fallback. Its failure is the caller's.
	s.sess = session{}
	if err := s.authenticate(ctx); err != nil {
		return "", err
	}
	return s.sess.accessToken, nil
}

// Invalidate discards the whole session, refresh token included. The next
// call through the pipeline authenticates from scratch.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.sess = session{}
	s.mu.Unlock()
}

// Ping proves the controller is reachable and the credentials are accepted
// by ensuring a valid access token exists.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.ensureValidToken(ctx)
	return err
}

// authenticate performs the client_credentials grant. Caller holds s.mu.
func (s *Service) authenticate(ctx context.Context) error {
	var env authEnvelope
	err := requests.
		URL(s.baseURL+authorizePath).
		Param("grant_type", grantClientCredentials).
		BodyJSON(credentialsGrantBody{
			OmadacID:     s.omadacID,
			ClientID:     s.clientID,
			ClientSecret: s.clientSecret,
		}).
		Client(s.httpClient).
		ToJSON(&env).
		Post().
		Fetch(ctx)
	if err != nil {
		return grantError("credentials grant", err)
	}
	return s.adoptSession(env)
}

// refreshSession performs the refresh_token grant. Caller holds s.mu.
func (s *Service) refreshSession(ctx context.Context) error {
	var env authEnvelope
	err := requests.
		URL(s.baseURL+authorizePath).
		Param("grant_type", grantRefreshToken).
		BodyJSON(refreshGrantBody{
			ClientID:     s.clientID,
			ClientSecret: s.clientSecret,
			RefreshToken: s.sess.refreshToken,
		}).
		Client(s.httpClient).
		ToJSON(&env).
		Post().
		Fetch(ctx)
	if err != nil {
		return grantError("token refresh", err)
	}
	return s.adoptSession(env)
}

// adoptSession validates a grant envelope and installs the session it
// carries. A grant that omits the refresh token keeps the one already
// held. Caller holds s.mu.
func (s *Service) adoptSession(env authEnvelope) error {
	if env.ErrorCode != 0 {
		return &AuthError{Code: env.ErrorCode, Msg: env.Msg}
	}
	if env.Result.AccessToken == "" {
		return &AuthError{Msg: "token endpoint returned no access token"}
	}

	ttl := time.Duration(env.Result.ExpiresIn)*time.Second - tokenExpiryMargin
	if ttl < 0 {
		ttl = 0
	}
	refresh := env.Result.RefreshToken
	if refresh == "" {
		refresh = s.sess.refreshToken
	}
	s.sess = session{
		accessToken:  env.Result.AccessToken,
		refreshToken: refresh,
		expiresAt:    s.now().Add(ttl),
	}

	log.Debug().
		Time("expires_at", s.sess.expiresAt).
		Msg("Controller session established")
	return nil
}

// grantError classifies a failed token-endpoint call: a response the
// endpoint itself produced is an authentication failure, anything below
// that is transport.
func grantError(op string, err error) error {
	if requests.HasStatusErr(err, http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden) {
		return &AuthError{Msg: op + " rejected", Err: err}
	}
	return &NetworkError{Op: op, Err: err}
}
