package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	ServiceUser       = "user"
	ServiceFacilities = "facilities"
	ServiceBooking    = "booking"

	maxBodyBytes = 8 << 20
)

// NewHTTPClient returns the shared client used for every upstream call.
// Deadlines come from the per-call context, not from http.Client.Timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Client talks to one backing service. It never retries.
type Client struct {
	service string
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(service, baseURL string, timeout time.Duration, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		service: service,
		baseURL: baseURL,
		timeout: timeout,
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) Service() string {
	return c.service
}

type Request struct {
	Method string
	Path   string
	// Body is JSON-encoded unless it is already a []byte or json.RawMessage.
	Body  any
	Token string
	// Timeout overrides the client default for this call.
	Timeout time.Duration
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Do performs the call and returns the response whatever its status.
// The error is non-nil only when no response was received.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindBadPayload, c.service, "failed to encode request body", err)
	}

	url := config.JoinURL(c.baseURL, req.Path)
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindBadPayload, c.service, "failed to build request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, infra.WrapUpstreamErr(c.logger, infra.KindTimeout, c.service, req.Method+" "+req.Path+" timed out", err)
		}
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindNetwork, c.service, req.Method+" "+req.Path+" failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, infra.WrapUpstreamErr(c.logger, infra.KindTimeout, c.service, "reading response timed out", err)
		}
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindNetwork, c.service, "failed to read response", err)
	}

	c.logger.Debug("upstream call",
		slog.String("service", c.service),
		slog.String("method", req.Method),
		slog.String("path", req.URLPath()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: raw}, nil
}

// DoJSON performs the call and decodes a 2xx body into out (which may be nil).
// A non-2xx status becomes an infra.UpstreamError of kind KindStatus.
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if !resp.OK() {
		c.logger.Warn("upstream returned an error status",
			slog.String("service", c.service),
			slog.String("method", req.Method),
			slog.String("path", req.URLPath()),
			slog.Int("status", resp.Status),
		)
		return infra.NewStatusError(c.service, resp.Status, resp.Body)
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindBadPayload, c.service, "failed to decode response", err)
	}
	return nil
}

// URLPath is the request path without any query string, for logging.
func (r Request) URLPath() string {
	if i := strings.IndexByte(r.Path, '?'); i >= 0 {
		return r.Path[:i]
	}
	return r.Path
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(b) == 0 {
			return nil, nil
		}
		return bytes.NewReader(b), nil
	case json.RawMessage:
		if len(b) == 0 {
			return nil, nil
		}
		return bytes.NewReader(b), nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, errs.Wrap(err, "marshal")
		}
		return bytes.NewReader(raw), nil
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
