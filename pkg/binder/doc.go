// Package binder decodes HTTP request bodies into loosely typed values for
// the validation pipeline.
//
// JSON and Form return a Func. Each one inspects the Content-Type header and
// returns an error wrapping ErrBinderNotApplicable for media types it does not
// handle, so several binders can be tried in order:
//
//	h := handler.Wrap(create, handler.WithBinders[handler.Context, map[string]any](
//	    binder.JSON(),
//	    binder.Form(),
//	))
//
// Decoded values are not validated or sanitized here; that is the job of the
// validator package.
package binder
