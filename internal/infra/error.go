package infra

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"courtmate-gateway/internal/pkg/errs"
)

type UpstreamErrorKind string

// Infrastructure-specific error kinds
const (
	KindTimeout    UpstreamErrorKind = "TIMEOUT"
	KindNetwork    UpstreamErrorKind = "NETWORK"
	KindStatus     UpstreamErrorKind = "UPSTREAM_STATUS"
	KindBadPayload UpstreamErrorKind = "BAD_PAYLOAD"
)

// UpstreamError is a failed call to one of the backing services.
// Service is the short lowercase name used in client-facing messages ("facilities").
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Service string
	Status  int
	Body    []byte
	msg     string
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Service)
	if e.Status != 0 {
		b.WriteString(" responded ")
		b.WriteString(strconv.Itoa(e.Status))
	}
	if e.msg != "" {
		b.WriteString(": ")
		b.WriteString(e.msg)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

// Is maps the kind onto the shared error taxonomy.
func (e UpstreamError) Is(target error) bool {
	switch target {
	case errs.ErrTimeout:
		return e.Kind == KindTimeout
	case errs.ErrNetwork:
		return e.Kind == KindNetwork
	case errs.ErrUpstream:
		return e.Kind == KindStatus
	case errs.ErrInternal:
		return e.Kind == KindBadPayload
	}
	return false
}

// Details returns the upstream body for the client-facing error envelope:
// decoded JSON when it parses, the raw text otherwise, nil when empty.
func (e UpstreamError) Details() any {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return nil
	}
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	return body
}

// Detail returns the "detail" field that the Python services put in their error bodies.
func (e UpstreamError) Detail() string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Detail.(string); ok {
		return s
	}
	return ""
}

func NewStatusError(service string, status int, body []byte) UpstreamError {
	return UpstreamError{Kind: KindStatus, Service: service, Status: status, Body: body}
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, service, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("service", service),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Service: service, msg: msg, err: err}
}

func AsUpstream(err error) (UpstreamError, bool) {
	var e UpstreamError
	if errs.As(err, &e) {
		return e, true
	}
	return UpstreamError{}, false
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	if e, ok := AsUpstream(err); ok {
		return e.Kind == kind
	}
	return false
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if e, ok := AsUpstream(err); ok {
		return e.Status
	}
	return 0
}
