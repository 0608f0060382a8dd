package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/banachtech/valuation/calibrate"
	"github.com/banachtech/valuation/config"
	"github.com/banachtech/valuation/engine"
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/solver"
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for our pricing service.
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	server := &Server{config: cfg, logger: logger}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	gin.SetMode(server.config.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery(), server.requestLogger)

	v1 := router.Group("/v1")
	v1.POST("/price/option", server.priceOption)
	v1.POST("/price/swap", server.priceSwap)
	v1.POST("/calibrate/curve", server.calibrateCurve)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// statusFor maps valuation errors caused by the request to 400 and anything else to 500.
func statusFor(err error) int {
	for _, target := range []error{
		product.ErrInvalidProductSpec,
		model.ErrInvalidModelSpec,
		calibrate.ErrMismatchedInputSizes,
		solver.ErrNonConvergence,
		engine.ErrUnsupportedPricingCombination,
		engine.ErrUnsupportedAverageType,
		engine.ErrInvalidPathCount,
		errBadRequest,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")
