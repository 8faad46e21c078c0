// Package client implements the registry ports over the folkv3 JSON API.
//
// Every call carries the X-Road client header of the configured Heldin, a fresh
// X-Road-Id and, when set, the end-user id. Lookups that find nobody return a
// nil record; every failure is an *APIError. Calls are never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/platform/metrics"
	"folkv3/internal/platform/middleware"
	"folkv3/internal/platform/transport"
	"folkv3/internal/registry/wire"
)

const tracerName = "folkv3/registry/client"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Option configures a registry client.
type Option func(*base)

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics records request counts and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

// WithHTTPClient replaces the client built from the certificate configuration.
// The certificate configuration is then ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(b *base) {
		b.httpClient = c
	}
}

// WithTimeout bounds each call, including reading the response.
func WithTimeout(d time.Duration) Option {
	return func(b *base) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithClock overrides the clock used to measure call latency.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

// base holds what every registry client shares.
type base struct {
	heldin     config.Heldin
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	now        func() time.Time
}

func newBase(heldin config.Heldin, cert *certconfig.Config, opts ...Option) (*base, error) {
	if err := heldin.Validate(); err != nil {
		return nil, newAPIError(opConfigure, 0, CodeConfig, "invalid heldin", err)
	}
	b := &base{
		heldin:  heldin,
		baseURL: heldin.BaseURL() + wire.BasePath,
		timeout: config.DefaultTimeout,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.httpClient == nil {
		httpClient, err := transport.BuildHTTP2Client(cert, b.timeout, b.logger)
		if err != nil {
			return nil, newAPIError(opConfigure, 0, CodeConfig, "build transport", err)
		}
		b.httpClient = httpClient
	}
	return b, nil
}

// call is one registry request.
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	// notFoundIsEmpty turns a 404 into found == false instead of an error.
	notFoundIsEmpty bool
}

// do sends c and decodes a 2xx body into out. found is false only for a 404
// on a call with notFoundIsEmpty.
func (b *base) do(ctx context.Context, c call, out any) (found bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	ctx, span := b.tracer.Start(ctx, c.operation, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", c.method),
			attribute.String("folkv3.path", c.path),
			attribute.String("xroad.client", b.heldin.Path()),
		))
	defer span.End()

	start := b.now()
	requestID := uuid.NewString()
	found, err = b.send(ctx, c, requestID, out)

	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.WarnContext(ctx, "registry call failed",
			"operation", c.operation,
			"request_id", requestID,
			"error", err,
		)
	case !found:
		outcome = metrics.OutcomeNotFound
	}
	elapsed := b.now().Sub(start)
	b.metrics.ObserveRequest(c.operation, outcome, elapsed)
	b.logger.DebugContext(ctx, "registry call",
		"operation", c.operation,
		"request_id", requestID,
		"outcome", outcome,
		"duration_ms", elapsed.Milliseconds(),
	)
	return found, err
}

func (b *base) send(ctx context.Context, c call, requestID string, out any) (bool, error) {
	target := b.baseURL + c.path
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			return false, newAPIError(c.operation, 0, CodeBadRequest, "encode request body", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, body)
	if err != nil {
		return false, newAPIError(c.operation, 0, CodeBadRequest, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.HeaderClient, b.heldin.ClientID())
	req.Header.Set(middleware.HeaderRequestID, requestID)
	if b.heldin.UserID != "" {
		req.Header.Set(middleware.HeaderUserID, b.heldin.UserID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return false, newAPIError(c.operation, 0, CodeTransport, "", err)
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound && c.notFoundIsEmpty {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, decodeError(c.operation, resp)
	}
	if out == nil {
		return true, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, newAPIError(c.operation, resp.StatusCode, CodeBadResponse, "decode response body", err)
	}
	return true, nil
}

func decodeError(operation string, resp *http.Response) *APIError {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return newAPIError(operation, resp.StatusCode, CodeHTTPStatus, http.StatusText(resp.StatusCode), err)
	}
	var body wire.ErrorResponse
	if json.Unmarshal(data, &body) != nil || (body.Code == "" && body.Message == "") {
		return newAPIError(operation, resp.StatusCode, CodeHTTPStatus, http.StatusText(resp.StatusCode), nil)
	}
	if body.Code == "" {
		body.Code = CodeHTTPStatus
	}
	return newAPIError(operation, resp.StatusCode, body.Code, body.Message, nil)
}

// invalidInput wraps a validation failure so callers still see an *APIError.
func invalidInput(operation string, err error) error {
	return newAPIError(operation, 0, CodeBadRequest, fmt.Sprintf("invalid input: %v", err), err)
}
