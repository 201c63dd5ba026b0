package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/taxsplit/internal/api"
)

const testProcedure = "/taxsplit.v1.Test/Echo"

// setupEchoServer serves a single procedure that fails for negative amounts.
func setupEchoServer(t *testing.T, opts ...connect.HandlerOption) (*connect.Client[api.EvaluateTaxRequest, api.EvaluateTaxResponse], func()) {
	t.Helper()

	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	handler := connect.NewUnaryHandler(testProcedure,
		func(ctx context.Context, req *connect.Request[api.EvaluateTaxRequest]) (*connect.Response[api.EvaluateTaxResponse], error) {
			if req.Msg.Amount < 0 {
				return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("negative amount"))
			}
			if GetRequestID(ctx) == "" {
				return nil, connect.NewError(connect.CodeInternal, errors.New("missing request id"))
			}
			return connect.NewResponse(&api.EvaluateTaxResponse{SplittingTax: req.Msg.Amount}), nil
		},
		opts...,
	)

	mux := http.NewServeMux()
	mux.Handle(testProcedure, handler)
	server := httptest.NewServer(mux)

	client := connect.NewClient[api.EvaluateTaxRequest, api.EvaluateTaxResponse](
		http.DefaultClient,
		server.URL+testProcedure,
		connect.WithCodec(api.JSONCodec{}),
	)
	return client, server.Close
}

func TestLoggingInterceptor_GeneratesRequestID(t *testing.T) {
	client, cleanup := setupEchoServer(t, connect.WithInterceptors(LoggingInterceptor()))
	defer cleanup()

	resp, err := client.CallUnary(context.Background(), connect.NewRequest(&api.EvaluateTaxRequest{Amount: 10}))
	require.NoError(t, err)

	assert.Len(t, resp.Header().Get(RequestIDHeader), 36)
}

func TestLoggingInterceptor_KeepsRequestID(t *testing.T) {
	client, cleanup := setupEchoServer(t, connect.WithInterceptors(LoggingInterceptor()))
	defer cleanup()

	req := connect.NewRequest(&api.EvaluateTaxRequest{Amount: 10})
	req.Header().Set(RequestIDHeader, "abc-123")

	resp, err := client.CallUnary(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
}

func TestLoggingInterceptor_PassesErrorsThrough(t *testing.T) {
	client, cleanup := setupEchoServer(t, connect.WithInterceptors(LoggingInterceptor()))
	defer cleanup()

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&api.EvaluateTaxRequest{Amount: -1}))

	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestMetricsInterceptor(t *testing.T) {
	metrics := NewMetrics()
	client, cleanup := setupEchoServer(t, connect.WithInterceptors(LoggingInterceptor(), metrics.Interceptor()))
	defer cleanup()

	for _, amount := range []float64{1, 2, -1} {
		_, _ = client.CallUnary(context.Background(), connect.NewRequest(&api.EvaluateTaxRequest{Amount: amount}))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(testProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(testProcedure, "invalid_argument")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

func TestMetricsHandler(t *testing.T) {
	metrics := NewMetrics()
	metrics.requests.WithLabelValues(testProcedure, "ok").Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "taxsplit_rpc_requests_total")
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORS("https://example.org")(next)

	tests := []struct {
		name       string
		method     string
		wantStatus int
	}{
		{name: "preflight answered directly", method: http.MethodOptions, wantStatus: http.StatusOK},
		{name: "post passed through", method: http.MethodPost, wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, "/", strings.NewReader("")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
