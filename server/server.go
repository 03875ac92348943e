package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/localinvoke/invoke"
)

// corsHeaders is the fixed header set attached to every response when CORS
// is enabled. It is not configurable per call.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Methods":     "OPTIONS, GET, POST, PUT, DELETE",
	"Access-Control-Allow-Headers":     "*",
	"Access-Control-Allow-Credentials": "true",
}

// Server adapts raw HTTP traffic to a single invoke-on-event handler. All of
// its state is fixed at construction; per-request state never outlives the
// request.
type Server struct {
	cfg         Config
	binaryTypes map[string]struct{}
	router      *mux.Router
	logger      *logrus.Logger
}

// New validates cfg, applies defaults and mounts the wildcard route on the
// router. The returned Server is ready for ListenAndServe, or the router can
// be driven directly by an existing http.Server.
func New(cfg Config) (*Server, error) {
	if cfg.Handler == nil {
		return nil, errors.New("server: a handler is required")
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if cfg.PathPattern == "" {
		cfg.PathPattern = DefaultPathPattern
	}

	if cfg.BinaryContentTypes == nil {
		cfg.BinaryContentTypes = DefaultBinaryContentTypes
	}

	if cfg.RequestContext == nil {
		cfg.RequestContext = map[string]interface{}{}
	}

	if cfg.Router == nil {
		cfg.Router = mux.NewRouter()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	server := &Server{
		cfg:         cfg,
		binaryTypes: invoke.BinaryTypeSet(cfg.BinaryContentTypes),
		router:      cfg.Router,
		logger:      cfg.Logger,
	}

	server.router.PathPrefix(cfg.PathPattern).HandlerFunc(server.handle)

	return server, nil
}

// Router returns the router the wildcard route is mounted on.
func (server *Server) Router() *mux.Router {
	return server.router
}

// URL returns the address the emulator serves on.
func (server *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", server.cfg.Port)
}

// ListenAndServe binds the configured port and serves until the listener
// fails. A readiness line is logged before binding.
func (server *Server) ListenAndServe() error {
	server.logger.WithFields(logrus.Fields{
		"url":  server.URL(),
		"time": time.Now().Format(time.RFC3339),
	}).Info("listening for invocations")

	err := http.ListenAndServe(fmt.Sprintf(":%d", server.cfg.Port), server.router)

	return errors.Wrapf(err, "server: failed serving on port %d", server.cfg.Port)
}

// handle is the single wildcard route. It buffers the body, short-circuits
// CORS preflights, translates the request into an event, invokes the handler
// once and writes the result.
func (server *Server) handle(w http.ResponseWriter, r *http.Request) {
	if !server.cfg.DisableCORS && r.Method == http.MethodOptions {
		applyCORS(w.Header())
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		// The body never completed; the handler must not see a partial read.
		server.logger.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Warn("abandoning request")
		return
	}

	event := invoke.NewEvent(r, mux.Vars(r), body, server.binaryTypes, server.cfg.RequestContext)
	ctx := invoke.NewContext(r.Context(), server.cfg.Context)

	start := time.Now()

	result, err := server.cfg.Handler(ctx, event)
	if err != nil {
		server.fail(w, r, errors.Wrap(err, "handler failed"))
		return
	}

	responseBody, err := result.BodyBytes()
	if err != nil {
		server.fail(w, r, err)
		return
	}

	header := w.Header()

	if !server.cfg.DisableCORS {
		applyCORS(header)
	}

	for name, value := range result.Headers {
		header.Set(name, value)
	}

	status := result.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)

	if len(responseBody) > 0 {
		_, _ = w.Write(responseBody)
	}

	server.logger.WithFields(logrus.Fields{
		"method":   event.Method,
		"path":     event.Path,
		"status":   status,
		"duration": time.Since(start).String(),
	}).Info("handled invocation")
}

// fail answers a request whose handler errored or returned an undecodable
// body. CORS headers still apply so browser callers can observe the failure.
func (server *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	server.logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("invocation failed")

	if !server.cfg.DisableCORS {
		applyCORS(w.Header())
	}

	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func applyCORS(header http.Header) {
	for name, value := range corsHeaders {
		header.Set(name, value)
	}
}
