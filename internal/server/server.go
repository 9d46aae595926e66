package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	timelike "github.com/tartampluch/go-timelike"
	"github.com/tartampluch/go-timelike/internal/config"
)

// instantResponse is the JSON body returned by the instant endpoint.
type instantResponse struct {
	Input       string  `json:"input"`
	Instant     string  `json:"instant"`
	UnixSeconds float64 `json:"unix_seconds"`
}

// durationResponse is the JSON body returned by the duration endpoint.
type durationResponse struct {
	Input    string  `json:"input"`
	Duration string  `json:"duration"`
	Seconds  float64 `json:"seconds"`
}

// errorResponse wraps a normalization failure for the client.
type errorResponse struct {
	Error string `json:"error"`
}

// NormalizeServer exposes the coercion functions over a localhost HTTP API.
type NormalizeServer struct {
	Port string
}

// NewNormalizeServer creates a new instance of the server.
func NewNormalizeServer(port string) *NormalizeServer {
	return &NormalizeServer{
		Port: port,
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *NormalizeServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteInstant, s.handleInstant)
	mux.HandleFunc(config.RouteDuration, s.handleDuration)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// handleInstant normalizes a time-like query value to a UTC instant.
func (s *NormalizeServer) handleInstant(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.queryValue(w, r)
	if !ok {
		return
	}

	t, err := timelike.ToTime(coerceValue(raw))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, instantResponse{
		Input:       raw,
		Instant:     t.Format(time.RFC3339Nano),
		UnixSeconds: float64(t.UnixNano()) / float64(time.Second),
	})
}

// handleDuration normalizes a duration-like query value.
func (s *NormalizeServer) handleDuration(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.queryValue(w, r)
	if !ok {
		return
	}

	d, err := timelike.ToDuration(coerceValue(raw))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, durationResponse{
		Input:    raw,
		Duration: d.String(),
		Seconds:  d.Seconds(),
	})
}

// queryValue validates the method and extracts the mandatory 'value' query
// parameter. It writes the error response itself when validation fails.
func (s *NormalizeServer) queryValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return "", false
	}

	raw := r.URL.Query().Get(config.QueryValue)
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: config.HTTPMsgValueMissing})
		return "", false
	}
	return raw, true
}

// coerceValue routes a query string into the numeric or textual branch of
// the coercion functions. Anything that parses as a float is epoch seconds
// (resp. a second count); everything else is treated as text.
func coerceValue(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// writeJSON serializes the response body with the standard headers.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
