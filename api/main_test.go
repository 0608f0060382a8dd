package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banachtech/valuation/config"
	"github.com/banachtech/valuation/logging"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, logOut io.Writer) *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Address: ":0", Mode: "test"},
		MC:     config.MonteCarloConfig{Paths: 10000, MaxPaths: 50000, Seed: 42, Antithetic: true},
		Log:    config.LogConfig{Level: "info"},
	}
	if logOut == nil {
		logOut = io.Discard
	}
	server := NewServer(cfg, logging.NewWithWriter(logOut, logging.Config{Service: "valuation-test", Level: "info"}))
	require.NotNil(t, server)
	return server
}

func post(t *testing.T, server *Server, url string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	server.router.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, body *bytes.Buffer) T {
	var out T
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}
