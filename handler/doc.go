// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a bound request value and returns a Response.
// Wrap turns it into an http.HandlerFunc, running the configured binders,
// decorators and error handler:
//
//	create := func(ctx handler.Context, req map[string]any) handler.Response {
//		posting, err := svc.Create(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(posting, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/job-postings", handler.Wrap(create,
//		handler.WithBinders[handler.Context, map[string]any](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, map[string]any](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                  // 200 with {"data": ...}
//	handler.JSONError(err)              // {"error": {"code", "message", "field"}}
//	handler.Templ(component, opts...)   // HTML, HTMX aware
//	handler.TemplPartial(partial, full) // fragment for HTMX, page otherwise
//	handler.Empty()                     // 204
//
// JSONError renders a *validator.ValidationError as 422 with code
// "validation_error", the failing field path and its user-facing message.
// HTTPError values keep their status code; other errors become 500 without
// leaking their text.
//
// # HTMX
//
// Templ responses set HX-Retarget and HX-Reswap for requests carrying
// HX-Request: true, so a form can post to a check endpoint and have the
// feedback fragment swapped in place.
package handler
