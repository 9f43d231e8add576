package freebox

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o freeboxfakes/fake_client.go . Client

// Client is an authenticated connection to one Freebox.
type Client interface {
	Open(ctx context.Context, host string, port int) error
	Close(ctx context.Context) error
	Permissions(ctx context.Context) (Permissions, error)
	WifiGlobalConfig(ctx context.Context) (WifiConfig, error)
	SetWifiGlobalConfig(ctx context.Context, cfg WifiConfig) error
}

var (
	// ErrNotOpen is returned by API calls made before Open succeeded.
	ErrNotOpen = errors.New("freebox: session not open")
	// ErrAuthorization is returned when the app token request is not granted.
	ErrAuthorization = errors.New("freebox: application not authorized")
)

type Options struct {
	AppDesc    AppDescriptor
	TokenFile  string
	APIVersion string
	// CAFile verifies the Freebox certificate. When empty, verification is skipped.
	CAFile string
	// HTTPClient overrides the transport built from CAFile.
	HTTPClient *http.Client
	// AuthorizeTimeout bounds how long Open waits for the user to grant access
	// on the device.
	AuthorizeTimeout time.Duration
	// AuthorizePoll is the delay between authorization status checks.
	AuthorizePoll time.Duration
	Logger        *zap.Logger
}

type freeboxClient struct {
	opts   Options
	http   *http.Client
	logger *zap.Logger

	mu           sync.Mutex
	baseURL      string
	token        *appToken
	sessionToken string
	permissions  Permissions
}

func New(opts Options) (Client, error) {
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.AuthorizeTimeout <= 0 {
		opts.AuthorizeTimeout = 2 * time.Minute
	}
	if opts.AuthorizePoll <= 0 {
		opts.AuthorizePoll = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		tlsConfig, err := tlsConfigFor(opts.CAFile)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		}
	}
	return &freeboxClient{
		opts:   opts,
		http:   httpClient,
		logger: logger.With(zap.String("component", "freebox")),
	}, nil
}

func tlsConfigFor(caFile string) (*tls.Config, error) {
	if caFile == "" {
		return &tls.Config{InsecureSkipVerify: true}, nil
	}
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caFile)
	}
	return &tls.Config{RootCAs: pool}, nil
}

// Open authorizes the application if needed, then opens a session.
func (c *freeboxClient) Open(ctx context.Context, host string, port int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseURL = "https://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/api/" + c.opts.APIVersion + "/"
	c.sessionToken = ""

	tok, err := loadToken(c.opts.TokenFile)
	if err != nil {
		return err
	}
	if tok == nil {
		c.logger.Info("No app token found, requesting authorization; confirm on the Freebox display",
			zap.String("token_file", c.opts.TokenFile))
		tok, err = c.authorize(ctx)
		if err != nil {
			return err
		}
		if err := saveToken(c.opts.TokenFile, tok); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
	}
	c.token = tok

	if err := c.openSession(ctx); err != nil {
		return err
	}
	c.logger.Info("Session opened", zap.String("base_url", c.baseURL))
	return nil
}

func (c *freeboxClient) authorize(ctx context.Context) (*appToken, error) {
	var res authorizeResult
	if err := c.do(ctx, http.MethodPost, "login/authorize/", c.opts.AppDesc, &res, false); err != nil {
		return nil, fmt.Errorf("request authorization: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.AuthorizeTimeout)
	defer cancel()
	path := "login/authorize/" + strconv.Itoa(res.TrackID)
	for {
		var status authorizeStatus
		if err := c.do(ctx, http.MethodGet, path, nil, &status, false); err != nil {
			return nil, fmt.Errorf("track authorization: %w", err)
		}
		switch status.Status {
		case "granted":
			return &appToken{AppToken: res.AppToken, TrackID: res.TrackID, AppDesc: c.opts.AppDesc}, nil
		case "pending":
		default:
			return nil, fmt.Errorf("%w: status %q", ErrAuthorization, status.Status)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrAuthorization, ctx.Err())
		case <-time.After(c.opts.AuthorizePoll):
		}
	}
}

// openSession must be called with c.mu held.
func (c *freeboxClient) openSession(ctx context.Context) error {
	var login loginResult
	if err := c.do(ctx, http.MethodGet, "login/", nil, &login, false); err != nil {
		return fmt.Errorf("get challenge: %w", err)
	}
	req := sessionRequest{
		AppID:    c.token.AppDesc.AppID,
		Password: password(c.token.AppToken, login.Challenge),
	}
	if req.AppID == "" {
		req.AppID = c.opts.AppDesc.AppID
	}
	var session sessionResult
	if err := c.do(ctx, http.MethodPost, "login/session/", req, &session, false); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	c.sessionToken = session.SessionToken
	c.permissions = session.Permissions
	return nil
}

func (c *freeboxClient) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionToken == "" {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "login/logout/", nil, nil, true)
	c.token = nil
	c.sessionToken = ""
	c.permissions = nil
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.logger.Info("Session closed")
	return nil
}

// Permissions opens a fresh session so that rights granted or revoked on the
// device since the last call are reflected.
func (c *freeboxClient) Permissions(ctx context.Context) (Permissions, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return nil, ErrNotOpen
	}
	if err := c.openSession(ctx); err != nil {
		return nil, err
	}
	perms := make(Permissions, len(c.permissions))
	for k, v := range c.permissions {
		perms[k] = v
	}
	return perms, nil
}

func (c *freeboxClient) WifiGlobalConfig(ctx context.Context) (WifiConfig, error) {
	var cfg WifiConfig
	if err := c.call(ctx, http.MethodGet, "wifi/config/", nil, &cfg); err != nil {
		return WifiConfig{}, err
	}
	return cfg, nil
}

func (c *freeboxClient) SetWifiGlobalConfig(ctx context.Context, cfg WifiConfig) error {
	return c.call(ctx, http.MethodPut, "wifi/config/", cfg, nil)
}

// call performs an authenticated request, re-opening the session once if the
// Freebox reports it expired.
func (c *freeboxClient) call(ctx context.Context, method, path string, body, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return ErrNotOpen
	}
	err := c.do(ctx, method, path, body, out, true)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.authExpired() {
		c.logger.Debug("Session expired, logging in again", zap.String("path", path))
		if err := c.openSession(ctx); err != nil {
			return err
		}
		err = c.do(ctx, method, path, body, out, true)
	}
	return err
}

func (c *freeboxClient) do(ctx context.Context, method, path string, body, out any, auth bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.sessionToken != "" {
		req.Header.Set("X-Fbx-App-Auth", c.sessionToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response (HTTP %d): %w", path, resp.StatusCode, err)
	}
	if !envelope.Success {
		return &APIError{Path: path, StatusCode: resp.StatusCode, Code: envelope.ErrorCode, Msg: envelope.Msg}
	}
	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", path, err)
		}
	}
	return nil
}
