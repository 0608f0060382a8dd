package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "OK", status: http.StatusOK, level: "INFO"},
		{name: "BAD_REQUEST", status: http.StatusBadRequest, level: "INFO"},
		{name: "INTERNAL_SERVER_ERROR", status: http.StatusInternalServerError, level: "ERROR"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			server := newTestServer(t, &logs)

			path := "/status"
			server.router.GET(path, func(ctx *gin.Context) {
				ctx.JSON(tc.status, gin.H{})
			})

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, path, nil)
			require.NoError(t, err)
			server.router.ServeHTTP(recorder, request)
			require.Equal(t, tc.status, recorder.Code)

			var rec map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &rec))
			require.Equal(t, tc.level, rec["level"])
			require.Equal(t, path, rec["path"])
			require.Equal(t, float64(tc.status), rec["status"])
		})
	}
}
