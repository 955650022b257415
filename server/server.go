// Package server - router assembly and handlers.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mces/core"
	"github.com/katalvlaran/mces/generate"
	"github.com/katalvlaran/mces/mces"
)

// Config carries the HTTP-layer settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowOrigin is the CORS origin echoed on every response; "*" by
	// default so a local frontend can talk to the API directly.
	AllowOrigin string
}

// Server wires the routes, the logger, and the metrics registry.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	engine  *gin.Engine
}

// New assembles a ready-to-serve Server. The logger must be non-nil.
func New(cfg Config, log *slog.Logger) *Server {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: newMetrics(),
		engine:  gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.cors())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	api := s.engine.Group("/api")
	api.POST("/generate", s.handleGenerate)
	api.POST("/mces/:algorithm", s.handleSolve)

	return s
}

// Handler exposes the router for tests and for embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	s.log.Info("http listening", "addr", s.cfg.Addr)

	return s.engine.Run(s.cfg.Addr)
}

// cors echoes the configured origin and short-circuits preflights.
func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", s.cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)

			return
		}
		c.Next()
	}
}

// generateRequest is the wire form of POST /api/generate.
type generateRequest struct {
	NumNodes int   `json:"num_nodes"`
	NumEdges int   `json:"num_edges"`
	Seed     int64 `json:"seed"`
}

// generateResponse carries two independent graphs drawn with the same
// parameters, ready to feed the solve endpoints as-is.
type generateResponse struct {
	Graph1 core.GraphDoc `json:"graph1"`
	Graph2 core.GraphDoc `json:"graph2"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})

		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g1, err := generate.Connected(req.NumNodes, req.NumEdges, seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	g2, err := generate.Connected(req.NumNodes, req.NumEdges, mces.DeriveSeed(seed, 1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	s.metrics.generateTotal.Inc()
	s.log.Info("graph pair generated",
		"nodes", req.NumNodes, "edges", req.NumEdges, "seed", seed)
	c.JSON(http.StatusOK, generateResponse{Graph1: g1.Doc(), Graph2: g2.Doc()})
}

// solveRequest is the wire form of POST /api/mces/:algorithm. Parameters are
// pointers so absence falls back to the solver defaults.
type solveRequest struct {
	Graph1 core.GraphDoc `json:"graph1"`
	Graph2 core.GraphDoc `json:"graph2"`

	MaxPathLen         *int     `json:"max_path_len"`
	AssignmentCap      *int     `json:"assignment_cap"`
	InitialTemperature *float64 `json:"initial_temperature"`
	CoolingRate        *float64 `json:"cooling_rate"`
	MaxIterations      *int     `json:"max_iterations"`
	LocalSearch        *bool    `json:"local_search"`
	Seed               *int64   `json:"seed"`
	TimeLimitMS        *int64   `json:"time_limit_ms"`
}

// options folds the request parameters over the algorithm defaults.
func (r *solveRequest) options(algo mces.Algorithm) mces.Options {
	opts := mces.DefaultOptions(algo)
	if r.MaxPathLen != nil {
		opts.MaxPathLen = *r.MaxPathLen
	}
	if r.AssignmentCap != nil {
		opts.AssignmentCap = *r.AssignmentCap
	}
	if r.InitialTemperature != nil {
		opts.InitialTemperature = *r.InitialTemperature
	}
	if r.CoolingRate != nil {
		opts.CoolingRate = *r.CoolingRate
	}
	if r.MaxIterations != nil {
		opts.MaxIterations = *r.MaxIterations
	}
	if r.LocalSearch != nil {
		opts.LocalSearch = *r.LocalSearch
	}
	if r.Seed != nil {
		opts.Seed = *r.Seed
	}
	if r.TimeLimitMS != nil {
		opts.TimeLimit = time.Duration(*r.TimeLimitMS) * time.Millisecond
	}

	return opts
}

func (s *Server) handleSolve(c *gin.Context) {
	algo, err := mces.ParseAlgorithm(c.Param("algorithm"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown algorithm"})

		return
	}

	var req solveRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		s.count(algo, "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})

		return
	}

	g1, err := core.FromDoc(req.Graph1)
	if err != nil {
		s.count(algo, "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "graph1: " + err.Error()})

		return
	}
	g2, err := core.FromDoc(req.Graph2)
	if err != nil {
		s.count(algo, "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "graph2: " + err.Error()})

		return
	}

	started := time.Now()
	res, err := mces.Solve(g1, g2, req.options(algo))
	if err != nil {
		s.count(algo, "error")
		s.log.Error("solve failed", "algorithm", algo.String(), "err", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})

		return
	}

	s.count(algo, "ok")
	s.metrics.solveDuration.WithLabelValues(algo.String()).
		Observe(time.Since(started).Seconds())
	s.log.Info("solve completed",
		"algorithm", algo.String(),
		"preserved", len(res.PreservedEdges),
		"optimal", res.Stats.SolutionOptimality,
		"time_ms", res.Stats.TimeMS)
	c.JSON(http.StatusOK, res)
}

func (s *Server) count(algo mces.Algorithm, status string) {
	s.metrics.solveTotal.WithLabelValues(algo.String(), status).Inc()
}

// statusFor maps solver sentinels to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, mces.ErrPatternTooLarge),
		errors.Is(err, mces.ErrOptionViolation),
		errors.Is(err, mces.ErrNilGraph):
		return http.StatusBadRequest
	case errors.Is(err, mces.ErrUnsupportedAlgorithm):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
