package commands

//go:generate mockgen -source=proxy.go -destination=../../../tests/mock/commands/mock_proxy.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/http"

	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/errs"
)

// ProxyTarget names a backing service and the path to call on it.
type ProxyTarget struct {
	Service string
	Path    string
}

type ProxyResult struct {
	Status      int
	ContentType string
	Body        []byte
}

type ProxyCommands interface {
	// Forward relays a request with the user's bearer token. A 2xx answer is returned
	// as is; any other status becomes an upstream status error carrying the body.
	Forward(ctx context.Context, target ProxyTarget, method string, body []byte, accessToken string) (*ProxyResult, error)
}

type proxyCommandsImpl struct {
	forwarders map[string]Forwarder
	logger     *slog.Logger
}

func NewProxyCommands(forwarders map[string]Forwarder, logger *slog.Logger) ProxyCommands {
	return &proxyCommandsImpl{
		forwarders: forwarders,
		logger:     logger,
	}
}

func (p *proxyCommandsImpl) Forward(ctx context.Context, target ProxyTarget, method string, body []byte, accessToken string) (*ProxyResult, error) {
	fw, ok := p.forwarders[target.Service]
	if !ok {
		return nil, errs.Mark(errs.New("no forwarder for service "+target.Service), errs.ErrInternal)
	}

	p.logger.Debug("proxying request", "service", target.Service, "method", method, "path", target.Path)

	resp, err := fw.Do(ctx, upstream.Request{
		Method: method,
		Path:   target.Path,
		Body:   body,
		Token:  accessToken,
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		p.logger.Warn("proxied request failed", "service", target.Service, "method", method, "path", target.Path, "status", resp.Status)
		return nil, infra.NewStatusError(target.Service, resp.Status, resp.Body)
	}

	return &ProxyResult{
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}

func isUnauthorized(err error) bool {
	return infra.StatusOf(err) == http.StatusUnauthorized
}
