// Package server exposes a finder's read-only queries over HTTP.
package server

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// Config holds HTTP server settings.
type Config struct {
	Bind         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server answers queries against one finder built before the server starts.
type Server struct {
	finder ports.WordsFinder
	logger ports.Logger
	http   *fasthttp.Server
	config Config
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// New creates a server for finder.
func New(finder ports.WordsFinder, logger ports.Logger, config Config) *Server {
	s := &Server{finder: finder, logger: logger, config: config}
	s.http = &fasthttp.Server{
		Handler:               s.Handle,
		Name:                  "WordFinder",
		ReadTimeout:           config.ReadTimeout,
		WriteTimeout:          config.WriteTimeout,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Server listening", "address", s.config.Bind)
	return s.http.ListenAndServe(s.config.Bind)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.http.Shutdown()
}

// Handle routes a request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")

	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
	} else {
		switch string(ctx.Path()) {
		case "/health":
			writeJSONResponse(ctx, map[string]string{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		case "/find":
			s.handleFind(ctx, s.finder.Find)
		case "/count":
			s.handleFind(ctx, s.finder.CountWordOccurrences)
		case "/words":
			s.handleWords(ctx)
		case "/filter":
			s.handleFilter(ctx)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			writeJSONError(ctx, "Not found")
		}
	}

	s.logger.Debug("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(startTime),
	)
}

func (s *Server) handleFind(ctx *fasthttp.RequestCtx, lookup func(string) *domain.Occurrences) {
	word := string(ctx.QueryArgs().Peek("word"))
	if word == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Query parameter 'word' is required")
		return
	}
	writeJSONResponse(ctx, lookup(word))
}

func (s *Server) handleWords(ctx *fasthttp.RequestCtx) {
	order, err := domain.ParseSortOrder(string(ctx.QueryArgs().Peek("sort")))
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}
	writeJSONResponse(ctx, s.finder.SortResults(s.finder.CountAllWords(), order))
}

func (s *Server) handleFilter(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	filter := domain.Filter{Prefix: string(args.Peek("starts_with"))}
	if raw := string(args.Peek("min_length")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, "min_length must be an integer")
			return
		}
		filter.MinLength = n
	}
	writeJSONResponse(ctx, s.finder.FilterWords(filter))
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, v interface{}) {
	enc := json.NewEncoder(ctx)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		ctx.ResetBody()
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Error encoding response")
	}
}

func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	body, _ := json.Marshal(ErrorResponse{Error: message})
	ctx.SetBody(body)
}
