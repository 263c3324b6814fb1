// Package gatekeeper talks to the account service that issues and
// introspects access tokens for the admin surface.
package gatekeeper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/goalzone-ng/goalzone-api/internal/domain/user"
	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/platform/resilience"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

const defaultIntrospectPath = "/v1/tokens/introspect"

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	introspectURL  string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	introspectPath := strings.TrimSpace(cfg.IntrospectPath)
	if introspectPath == "" {
		introspectPath = defaultIntrospectPath
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		introspectURL:  buildURL(cfg.BaseURL, introspectPath),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// VerifyAccessToken introspects one bearer token and returns the principal
// it belongs to. Transport failures trip the circuit breaker; token
// rejections do not.
func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, fmt.Errorf("%w: gatekeeper circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	decoded, err := c.introspect(ctx, token)
	if err != nil {
		if c.circuitEnabled && !crerr.Is(err, usecase.ErrUnauthorized) {
			c.breaker.RecordFailure()
		}
		return user.Principal{}, err
	}
	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}
	role := user.Role(strings.ToLower(strings.TrimSpace(decoded.Role)))
	if role != user.RoleAdmin && role != user.RoleEditor {
		return user.Principal{}, fmt.Errorf("%w: unknown role %q", usecase.ErrUnauthorized, decoded.Role)
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Role:   role,
	}, nil
}

func (c *Client) introspect(ctx context.Context, token string) (introspectResponse, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return introspectResponse{}, fmt.Errorf("%w: request introspection: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return introspectResponse{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "read introspect response")
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "gatekeeper introspection non-200",
			"status_code", resp.StatusCode,
		)
		return introspectResponse{}, fmt.Errorf("%w: introspection status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return introspectResponse{}, crerr.Wrap(err, "unmarshal introspect response")
	}

	return decoded, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
