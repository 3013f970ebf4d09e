package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukso-network/lukso-indexer-api/internal/api/middleware"
	"github.com/lukso-network/lukso-indexer-api/internal/api/server"
	"github.com/lukso-network/lukso-indexer-api/internal/metrics"
	"github.com/lukso-network/lukso-indexer-api/internal/mocks"
)

func TestServer_Router(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	registry := prometheus.NewRegistry()
	m := metrics.New()
	m.Register(registry)

	router := server.New(server.Config{}, exec, m, registry).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lukso_indexer_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_RouterWithoutMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	router := server.New(server.Config{}, exec, nil, nil).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	s := server.New(server.Config{}, nil, nil, nil)
	assert.NoError(t, s.Shutdown(context.Background()))
}
