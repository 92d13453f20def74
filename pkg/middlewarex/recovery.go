package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"verify_gateway/pkg/httpx/reply"
	"verify_gateway/pkg/logx"
)

// Recovery перехватывает панику хендлера и отвечает 500 в конверте,
// который строит render для этой группы маршрутов.
func Recovery(render reply.Renderer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			defer func() {
				if rec := recover(); rec != nil {
					logger(ctx).Error(
						"panic in handler",
						slog.Any(logx.FieldError, rec),
						slog.String(logx.FieldStack, string(debug.Stack())),
					)

					reply.JSON(ctx, w, http.StatusInternalServerError, render(reply.InternalErrorMessage))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
