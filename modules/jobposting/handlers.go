package jobposting

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hirekit/handler"
	"github.com/dmitrymomot/hirekit/pkg/binder"
	"github.com/dmitrymomot/hirekit/pkg/i18n"
	"github.com/dmitrymomot/hirekit/pkg/validator"
	"github.com/dmitrymomot/hirekit/svc/jobposting"
)

// Request is the decoded body of a job posting request. It stays loosely
// typed until the validation pipeline narrows it.
type Request = any

// Handlers exposes the job posting service over HTTP.
type Handlers struct {
	svc          jobposting.Service
	errorHandler handler.ErrorHandler[handler.Context]
	checkMW      []func(http.Handler) http.Handler
	translator   *i18n.Translator
}

// Option configures Handlers.
type Option func(*Handlers)

// WithCheckMiddleware wraps the live check route, typically with a rate limiter.
func WithCheckMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(h *Handlers) {
		h.checkMW = append(h.checkMW, mw...)
	}
}

// WithTranslator localizes validation messages for the request locale.
func WithTranslator(tr *i18n.Translator) Option {
	return func(h *Handlers) {
		h.translator = tr
	}
}

// NewHandlers creates Handlers. A nil log discards error logs.
func NewHandlers(svc jobposting.Service, log *slog.Logger, opts ...Option) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Handlers{
		svc:          svc,
		errorHandler: handler.NewErrorHandler(log),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle returns the job posting routes.
func (h *Handlers) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(h.create,
		handler.WithBinders[handler.Context, Request](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
	))

	// Live form feedback accepts both JSON and form posts
	r.With(h.checkMW...).Post("/check", handler.Wrap(h.check,
		handler.WithBinders[handler.Context, Request](
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
	))

	r.Get("/{id}", handler.Wrap(h.get,
		handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
	))

	r.Put("/{id}", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, Request](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
	))

	return r
}

func (h *Handlers) create(ctx handler.Context, req Request) handler.Response {
	posting, err := h.svc.Create(ctx, req)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(posting, handler.WithJSONStatus(http.StatusCreated))
}

func (h *Handlers) update(ctx handler.Context, req Request) handler.Response {
	posting, err := h.svc.Update(ctx, chi.URLParam(ctx.Request(), "id"), req)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(posting)
}

func (h *Handlers) get(ctx handler.Context, _ Request) handler.Response {
	posting, err := h.svc.Get(ctx, chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(posting)
}

func (h *Handlers) check(ctx handler.Context, req Request) handler.Response {
	posting, ve := h.svc.Check(req)
	ve = h.localize(ctx, ve)
	return handler.TemplPartial(
		jobposting.Feedback(ve),
		jobposting.CheckPage(posting, ve),
		handler.WithTarget("#"+jobposting.FeedbackElementID),
		handler.WithSwap(handler.SwapOuterHTML),
	)
}

// fail logs err through the error handler's classification and renders it.
func (h *Handlers) fail(ctx handler.Context, err error) handler.Response {
	if errors.Is(err, jobposting.ErrNotFound) {
		err = errors.Join(handler.ErrNotFound, err)
	}
	if ve := validator.Extract(err); ve != nil {
		err = h.localize(ctx, ve)
	}
	return errorResponse{err: err, handle: h.errorHandler, ctx: ctx}
}

// localize swaps the message of ve for its translation, when one exists.
func (h *Handlers) localize(ctx handler.Context, ve *validator.ValidationError) *validator.ValidationError {
	if ve == nil || h.translator == nil {
		return ve
	}
	if msg, ok := h.translator.Tc(ctx, ve.TranslationKey, ve.TranslationValues); ok {
		return ve.WithMessage(msg)
	}
	return ve
}

type errorResponse struct {
	err    error
	handle handler.ErrorHandler[handler.Context]
	ctx    handler.Context
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	e.handle(e.ctx, e.err)
	return nil
}
