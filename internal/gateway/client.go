package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/models"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// Client is the request/response wrapper around the external scheduling
// service. It holds no state beyond the base address, default headers and
// a readiness flag.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	logger     *zap.Logger
	ready      atomic.Bool
}

// Config configures a gateway client. A zero RequestTimeout keeps the
// transport default: entity calls are not individually bounded.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// New builds a gateway client. Call Start before relying on Ready.
func New(cfg Config) *Client {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		logger: cfg.Logger.Named("gateway"),
	}
}

// Start validates the configured address in the background and flips the
// readiness flag. A gateway that never becomes ready resolves to local mode
// during arbitration instead of failing startup.
func (c *Client) Start() {
	go func() {
		u, err := url.Parse(c.baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			c.logger.Warn("invalid scheduling service address",
				zap.String("base_url", c.baseURL), zap.Error(err))
			return
		}
		c.ready.Store(true)
	}()
}

// Ready reports whether the client finished its startup validation.
func (c *Client) Ready() bool {
	return c.ready.Load()
}

// envelope is the scheduling service's response contract. Auto-reschedule
// additionally carries a top-level message beside the data payload.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// do issues one request and unwraps the envelope into out. Transport
// failures and success:false envelopes surface as the same failure shape.
// The returned string is the optional top-level message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return "", remoteErr(err, 0, "")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", remoteErr(err, 0, "")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", remoteErr(err, resp.StatusCode, "")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", remoteErr(err, resp.StatusCode, "")
	}
	if !env.Success {
		return "", remoteErr(nil, resp.StatusCode, env.Error)
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", remoteErr(err, resp.StatusCode, "")
		}
	}
	return env.Message, nil
}

// Health issues the unauthenticated status request. The endpoint is not
// wrapped in the envelope and reports unhealthy states with non-2xx codes,
// which still carry a parseable status document.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, remoteErr(err, 0, "")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, remoteErr(err, 0, "")
	}
	defer resp.Body.Close()

	var status models.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, remoteErr(err, resp.StatusCode, "")
	}
	return &status, nil
}

// remoteErr is the one failure shape gateway callers ever see: the upstream
// error message when present, otherwise a generic message keyed on the HTTP
// status.
func remoteErr(err error, status int, upstream string) *appErrors.Error {
	message := upstream
	if message == "" {
		if status > 0 {
			message = fmt.Sprintf("scheduling service returned status %d", status)
		} else {
			message = appErrors.ErrRemote.Message
		}
	}
	httpStatus := http.StatusBadGateway
	if status >= http.StatusBadRequest {
		httpStatus = status
	}
	return appErrors.Wrap(err, appErrors.ErrRemote.Code, httpStatus, message)
}
