package log

import (
	"context"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// Method names the operation a log line belongs to.
type Method string

const (
	MethodGet    Method = "GET"
	MethodList   Method = "LIST"
	MethodCreate Method = "CREATE"
	MethodUpdate Method = "UPDATE"
	MethodDelete Method = "DELETE"
	MethodLogin  Method = "LOGIN"
	MethodUpload Method = "UPLOAD"
)

// New builds a JSON logger writing to w.
func New(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(cfg.Level),
		AddSource: cfg.AddSource,
	}))
}

// WriteLog records a failed operation on the default logger.
func WriteLog(ctx context.Context, level slog.Level, method Method, where string, err error) {
	attrs := []any{
		slog.String("method", string(method)),
		slog.String("where", where),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	if id := middleware.GetReqID(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	slog.Default().Log(ctx, level, "operation failed", attrs...)
}

// RequestLogger logs every request once it is served.
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l.InfoContext(r.Context(), "request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
