package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/odfkit/odsgen/pkg/cache"
	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/ods"
	"github.com/odfkit/odsgen/pkg/pipeline"
	"github.com/odfkit/odsgen/pkg/style"
)

// serveCommand creates the serve command running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP service",
		Long: `Run an HTTP service exposing the converter.

Endpoints:
  POST /v1/convert   Convert the request body; the input format is taken
                     from the Content-Type header (application/json,
                     application/yaml, application/toml).
  GET  /v1/styles    List the built-in style catalog as JSON.
  GET  /healthz      Liveness probe.

Conversion results are cached on disk keyed by input, format, and
generator version; --no-cache disables this.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && cfg.Addr != "" {
				addr = cfg.Addr
			}
			return c.runServe(cmd.Context(), addr, cfg.CacheDir, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

// runServe starts the service and blocks until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, addr, cacheDirOverride string, noCache bool) error {
	var store cache.Cache
	if noCache {
		store = cache.NewNullCache()
	} else {
		var err error
		if store, err = newCache(cacheDirOverride); err != nil {
			c.Logger.Warn("cache unavailable, continuing without", "err", err)
			store = cache.NewNullCache()
		}
	}
	runner := pipeline.NewRunner(store, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.router(runner),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// router assembles the chi handler tree.
func (c *CLI) router(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(c.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"ok"}`)
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", c.handleConvert(runner))
		r.Get("/styles", handleStyles)
	})
	return r
}

// maxBodyBytes bounds request bodies so one oversized description
// cannot exhaust memory.
const maxBodyBytes = 32 << 20

// handleConvert converts the request body and streams back the archive.
func (c *CLI) handleConvert(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		format, err := formatFromContentType(req.Header.Get("Content-Type"))
		if err != nil {
			writeError(w, err)
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyBytes))
		if err != nil {
			writeError(w, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "reading request body"))
			return
		}

		result, hit, err := runner.Execute(req.Context(), body, pipeline.Options{
			Format: format,
			Logger: loggerFromContext(req.Context()),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", ods.Mimetype)
		if hit {
			w.Header().Set("X-Cache", "HIT")
		}
		w.Write(result.ODS)
	}
}

// handleStyles lists the built-in catalog as JSON.
func handleStyles(w http.ResponseWriter, req *http.Request) {
	reg := style.Builtin()
	type entry struct {
		Name   string `json:"name"`
		Family string `json:"family"`
	}
	entries := make([]entry, 0, reg.Len())
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		entries = append(entries, entry{Name: name, Family: string(def.Family)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// formatFromContentType maps the request media type onto an input
// format. An absent Content-Type decodes as YAML, which also accepts
// JSON bodies.
func formatFromContentType(header string) (pipeline.Format, error) {
	if header == "" {
		return pipeline.FormatAuto, nil
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "parsing Content-Type")
	}
	switch mediaType {
	case "application/json":
		return pipeline.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return pipeline.FormatYAML, nil
	case "application/toml", "text/x-toml":
		return pipeline.FormatTOML, nil
	case "text/plain", "application/octet-stream":
		return pipeline.FormatAuto, nil
	default:
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "unsupported Content-Type: %s", mediaType)
	}
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps input errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if apperr.IsInputError(err) {
		status = http.StatusBadRequest
	}
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: apperr.UserMessage(err),
	})
}

// requestID tags every request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := withRequestID(req.Context(), id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requestIDKey is the context key for the request ID.
const requestIDKey ctxKey = 1

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// logRequests attaches a request-scoped logger to the context and logs
// one line per request with status and duration.
func (c *CLI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		reqLogger := c.Logger.With("request_id", requestIDFromContext(req.Context()))
		req = req.WithContext(withLogger(req.Context(), reqLogger))
		start := time.Now()
		next.ServeHTTP(ww, req)
		reqLogger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}
