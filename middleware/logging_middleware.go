package middleware

import (
	"context"
	"net/http"
	"time"

	"chatapp/backend/logger"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type accessEntryKey struct{}

// accessEntry 讓內層 middleware 把資料回填到外層的存取紀錄
type accessEntry struct {
	userID string
}

func setAccessUser(ctx context.Context, userID string) {
	if e, ok := ctx.Value(accessEntryKey{}).(*accessEntry); ok {
		e.userID = userID
	}
}

// LoggingMiddleware 每個請求記錄一行 method, path, status, latency。
// 應包在整個 router 外層，404/405 也會被記錄。
func LoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			entry := &accessEntry{}

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), accessEntryKey{}, entry)))

			ctx := r.Context()
			if entry.userID != "" {
				ctx = logger.WithUserID(ctx, entry.userID)
			}
			log.InfoCtx(ctx, "request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
