package omada

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Request is one controller API call. Path is relative to the base URL;
// Body, when non-nil, is marshaled as JSON fresh on every attempt so a
// replay carries the identical payload.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Do executes req and returns the result payload of its response envelope.
// A call rejected for session validity (HTTP 401/403 or a session-invalid
// error code) is replayed exactly once after invalidating the token and
// re-authenticating; a second rejection of the same kind is returned
// unmodified. Every other failure is returned immediately without retry.
func (s *Service) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	result, rejected, err := s.send(ctx, req)
	if !rejected {
		return result, err
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("Session rejected, re-authenticating and replaying once")
	s.Invalidate()

	result, _, err = s.send(ctx, req)
	return result, err
}

// Call is the generic escape hatch: an arbitrary controller call executed
// through the same token and retry pipeline as the typed operations.
func (s *Service) Call(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.Do(ctx, Request{Method: method, Path: path, Query: query, Body: body})
}

// send performs one attempt. The middle return reports whether the
// controller rejected the session, which is the only condition Do retries.
func (s *Service) send(ctx context.Context, req Request) (json.RawMessage, bool, error) {
	token, err := s.ensureValidToken(ctx)
	if err != nil {
		return nil, false, err
	}

	u := s.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, false, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, false, &NetworkError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Authorization", "AccessToken="+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, false, &NetworkError{Op: req.Method + " " + req.Path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, &NetworkError{Op: "read response", Status: resp.StatusCode, Err: err}
	}

	var env apiResponse
	envErr := json.Unmarshal(raw, &env)

	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int("error_code", env.ErrorCode).
		Dur("duration", time.Since(start)).
		Msg("Controller request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, true, rejectionError(resp.StatusCode, env, envErr == nil)

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		if envErr == nil && env.ErrorCode != 0 {
			return nil, false, &APIError{Status: resp.StatusCode, Code: env.ErrorCode, Msg: env.Msg}
		}
		return nil, false, &NetworkError{Op: req.Method + " " + req.Path, Status: resp.StatusCode}

	case envErr != nil:
		return nil, false, &NetworkError{Op: "decode response", Status: resp.StatusCode, Err: envErr}

	case env.ErrorCode != 0:
		apiErr := &APIError{Status: resp.StatusCode, Code: env.ErrorCode, Msg: env.Msg}
		_, invalid := s.sessionInvalid[env.ErrorCode]
		return nil, invalid, apiErr
	}

	return env.Result, false, nil
}

// rejectionError shapes the error for an HTTP-level session rejection,
// preferring the controller's own code and message when the body carried
// an envelope.
func rejectionError(status int, env apiResponse, hasEnvelope bool) error {
	if hasEnvelope && env.ErrorCode != 0 {
		return &APIError{Status: status, Code: env.ErrorCode, Msg: env.Msg}
	}
	return &APIError{Status: status, Msg: http.StatusText(status)}
}
