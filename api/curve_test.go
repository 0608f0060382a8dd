package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCalibrateCurve(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"maturities": []float64{1.0, 2.0, 5.0}, "rates": []float64{0.02, 0.025, 0.03}, "times": []float64{0.0, 1.0, 3.0, 5.0, 7.0}},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decode[curveResponse](t, recorder.Body)
				require.Equal(t, "flat", resp.Interpolation)
				require.Equal(t, "forward", resp.Interpolatee)
				require.Len(t, resp.Components, 3)
				require.Len(t, resp.DiscountFactors, 5)
				require.InDelta(t, 1.0, resp.DiscountFactors[0].DF, 1e-15)
				for i := 1; i < len(resp.DiscountFactors); i++ {
					require.Less(t, resp.DiscountFactors[i].DF, resp.DiscountFactors[i-1].DF)
				}
			},
		},
		{
			name: "DEFAULT_TIMES",
			body: gin.H{"maturities": []float64{1.0, 2.0}, "rates": []float64{0.02, 0.025}, "interpolation": "linear", "interpolatee": "zero"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decode[curveResponse](t, recorder.Body)
				require.Equal(t, "linear", resp.Interpolation)
				require.Equal(t, "zero", resp.Interpolatee)
				require.Len(t, resp.DiscountFactors, 2)
				require.Equal(t, 2.0, resp.DiscountFactors[1].Time)
			},
		},
		{
			name: "MISMATCHED",
			body: gin.H{"maturities": []float64{1.0, 2.0}, "rates": []float64{0.02}},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "UNKNOWN_INTERPOLATION",
			body: gin.H{"maturities": []float64{1.0}, "rates": []float64{0.02}, "interpolation": "cubic"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NOT_INCREASING",
			body: gin.H{"maturities": []float64{2.0, 1.0}, "rates": []float64{0.02, 0.02}},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(t, nil)
			recorder := post(t, server, "/v1/calibrate/curve", tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}
