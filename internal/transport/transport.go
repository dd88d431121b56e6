// Package transport builds the HTTP client every backend call goes through:
// authentication header attachment, request/response logging, and per-request
// tracing and metrics.
package transport

import (
	"encoding/base64"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"time"

	"meetapp/internal/credentials"
	"meetapp/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// Options configures the dispatcher chain.
type Options struct {
	Credentials *credentials.Store
	Logger      *slog.Logger
	Telemetry   telemetry.Telemetry

	// LogBodies enables full request/response body logging. Keep it off
	// outside development: bodies carry credentials and personal data.
	LogBodies bool

	// Timeout bounds connection establishment and the whole exchange.
	Timeout time.Duration

	// Base is the underlying round tripper. Defaults to a transport with
	// dial and TLS handshake timeouts matching Timeout.
	Base http.RoundTripper
}

// NewClient returns an *http.Client that attaches authentication per the
// stored credentials, logs every exchange, and records telemetry.
func NewClient(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := opts.Base
	if base == nil {
		base = &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout,
			}).DialContext,
			TLSHandshakeTimeout: timeout,
		}
	}

	chain := &authRoundTripper{
		credentials: opts.Credentials,
		next: &loggingRoundTripper{
			logger:    logger,
			telemetry: opts.Telemetry,
			logBodies: opts.LogBodies,
			next:      base,
		},
	}

	return &http.Client{
		Transport: chain,
		Timeout:   timeout,
	}
}

// authRoundTripper attaches exactly one Authorization header per request.
// Precedence: stored bearer token, then basic login:password, then nothing.
// It runs on every request, the login request included, which is how login
// authenticates via basic credentials before any token exists.
type authRoundTripper struct {
	credentials *credentials.Store
	next        http.RoundTripper
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set(requestIDHeader, uuid.New().String())

	if t.credentials != nil {
		if token := t.credentials.Token(); token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		} else if login, password := t.credentials.Login(), t.credentials.Password(); login != "" && password != "" {
			encoded := base64.StdEncoding.EncodeToString([]byte(login + ":" + password))
			out.Header.Set("Authorization", "Basic "+encoded)
		}
	}

	return t.next.RoundTrip(out)
}

// loggingRoundTripper logs every exchange, opens a span for it, and records
// the request metrics.
type loggingRoundTripper struct {
	logger    *slog.Logger
	telemetry telemetry.Telemetry
	logBodies bool
	next      http.RoundTripper
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := otel.Tracer("meetapp/transport").Start(req.Context(), req.Method+" "+req.URL.Path,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	requestID := req.Header.Get(requestIDHeader)
	logger := t.logger.With("request_id", requestID, "method", req.Method, "url", req.URL.String())

	if t.logBodies {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			logger.Debug("Request", "dump", string(dump))
		}
	} else {
		logger.Debug("Request")
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("Request failed", "error", err, "duration", duration)
		if t.telemetry != nil {
			t.telemetry.RecordAPIRequest(ctx, req.Method, req.URL.Path, 0, duration)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}

	if t.logBodies {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			logger.Debug("Response", "status", resp.StatusCode, "duration", duration, "dump", string(dump))
		}
	} else {
		logger.Debug("Response", "status", resp.StatusCode, "duration", duration)
	}

	if t.telemetry != nil {
		t.telemetry.RecordAPIRequest(ctx, req.Method, req.URL.Path, resp.StatusCode, duration)
	}

	return resp, nil
}
