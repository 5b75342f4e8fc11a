package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hirekit/pkg/environment"
	"github.com/dmitrymomot/hirekit/pkg/logger"
	"github.com/dmitrymomot/hirekit/pkg/requestid"
	"github.com/dmitrymomot/hirekit/pkg/validator"
)

// NewErrorHandler creates the default error handler. Errors are rendered
// as JSON: validation failures become 422 with the failing field, known
// HTTP errors keep their status and everything else is a 500 whose cause
// is logged. The cause is only sent to the client in development.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		attrs := []slog.Attr{
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Group("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			),
			logger.Handler(routePattern(r)),
			logger.Component("error_handler"),
		}

		level := slog.LevelError
		var opts []JSONOption
		if ve := validator.Extract(err); ve != nil {
			level = slog.LevelWarn
			attrs = append(attrs, logger.Field(ve.Field), logger.Kind(ve.Kind))
		} else if code := asHTTPError(err).Code; code < http.StatusInternalServerError {
			level = slog.LevelWarn
		} else if environment.IsDevelopment(ctx) {
			opts = append(opts, WithJSONDebug(err))
		}
		attrs = append(attrs, logger.Error(err))
		log.LogAttrs(r.Context(), level, "request error", attrs...)

		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}

// routePattern returns the chi route that matched r, or "" outside a router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
