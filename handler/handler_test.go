package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hirekit/handler"
	"github.com/dmitrymomot/hirekit/pkg/binder"
)

type payload = map[string]any

func echo(ctx handler.Context, req payload) handler.Response {
	return handler.JSON(req)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	binders := handler.WithBinders[handler.Context, payload](binder.JSON(), binder.Form())

	t.Run("binds json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jobTitle":"SWE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(echo, binders)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"jobTitle":"SWE"}}`, w.Body.String())
	})

	t.Run("falls through to form binder", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("jobTitle=SWE"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		handler.Wrap(echo, binders)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"jobTitle":"SWE"}}`, w.Body.String())
	})

	t.Run("no applicable binder", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("SWE"))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()

		handler.Wrap(echo, binders)(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("binder failure", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jobTitle":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(echo, binders)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("without binders", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.Wrap(func(ctx handler.Context, req payload) handler.Response {
			assert.Nil(t, req)
			return handler.Empty()
		})(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(
			func(ctx handler.Context, req payload) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, payload](func(ctx handler.Context, err error) {
				got = err
			}),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		trace := func(name string) handler.Decorator[handler.Context, payload] {
			return func(next handler.HandlerFunc[handler.Context, payload]) handler.HandlerFunc[handler.Context, payload] {
				return func(ctx handler.Context, req payload) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.Wrap(
			func(ctx handler.Context, req payload) handler.Response {
				order = append(order, "handler")
				return handler.Empty()
			},
			handler.WithDecorators(trace("first"), trace("second")),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("render error reaches error handler", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		h := handler.Wrap(func(ctx handler.Context, req payload) handler.Response {
			return failingResponse{}
		})
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk on fire")
	})
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("disk on fire")
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(t.Context())
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)
	require.NotNil(t, ctx)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Nil(t, ctx.Value(key{}))
	assert.NoError(t, ctx.Err())

	withValue := req.WithContext(context.WithValue(req.Context(), key{}, "v"))
	assert.Equal(t, "v", handler.NewContext(w, withValue).Value(key{}))
}
