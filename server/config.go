package server

import (
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/prognoshealth/localinvoke/invoke"
)

const (
	// DefaultPort is the port the emulator binds when none is configured.
	DefaultPort = 8000

	// DefaultPathPattern matches every path, so all traffic reaches the
	// handler. Patterns may carry mux-style variables ("/users/{id}") which
	// surface as the event's pathParameters.
	DefaultPathPattern = "/"
)

// DefaultBinaryContentTypes lists the content types whose bodies are base64
// encoded rather than passed through as UTF-8 text. A configured override
// replaces this list; it is never merged with it.
var DefaultBinaryContentTypes = []string{
	"application/octet-stream",
	"image/png",
	"image/jpeg",
	"image/gif",
	"application/pdf",
	"application/zip",
}

// Config is the construction-time configuration for a Server. It is read
// once by New and never mutated afterwards; the zero value of every optional
// field selects the documented default.
type Config struct {
	// Handler is invoked once per completed request. Required.
	Handler invoke.Handler

	// Port to bind. Defaults to DefaultPort.
	Port int

	// DisableCORS turns off the CORS policy, so OPTIONS requests reach the
	// handler like any other method and no CORS headers are emitted. CORS is
	// on by default.
	DisableCORS bool

	// BinaryContentTypes replaces DefaultBinaryContentTypes when non-nil.
	BinaryContentTypes []string

	// PathPattern is the mux pattern the wildcard route is mounted under.
	// All methods and all sub-paths beneath it match. Defaults to
	// DefaultPathPattern.
	PathPattern string

	// RequestContext is the template deep-copied into every event's
	// requestContext. Defaults to an empty mapping.
	RequestContext map[string]interface{}

	// Context is the opaque invocation context handed unchanged to every
	// handler call, retrievable via invoke.FromContext.
	Context interface{}

	// Router is the externally supplied mux router to mount on. A fresh one
	// is created when nil.
	Router *mux.Router

	// Logger defaults to a new logrus logger.
	Logger *logrus.Logger
}

// FromEnv builds a Config from the environment, loading a .env file first if
// one is present. Recognized variables: PORT, DISABLE_CORS, PATH_PATTERN and
// BINARY_TYPES (comma separated, replaces the default binary set). The
// handler, requestContext template and invocation context cannot come from
// the environment and must be set by the caller.
func FromEnv() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DISABLE_CORS", false)
	v.SetDefault("PATH_PATTERN", DefaultPathPattern)

	cfg := Config{
		Port:        v.GetInt("PORT"),
		DisableCORS: v.GetBool("DISABLE_CORS"),
		PathPattern: v.GetString("PATH_PATTERN"),
	}

	if raw := v.GetString("BINARY_TYPES"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			cfg.BinaryContentTypes = append(cfg.BinaryContentTypes, strings.TrimSpace(t))
		}
	}

	return cfg
}
