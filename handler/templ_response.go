package handler

import (
	"net/http"

	"github.com/a-h/templ"
)

// TemplOption configures how an HTMX request swaps a rendered component.
// Options are ignored for regular requests.
type TemplOption func(*templOptions)

type templOptions struct {
	status int
	target string
	swap   string
}

// WithTarget sets the CSS selector the component replaces (HX-Retarget).
func WithTarget(selector string) TemplOption {
	return func(o *templOptions) {
		o.target = selector
	}
}

// WithSwap sets the HTMX swap style (HX-Reswap).
func WithSwap(style string) TemplOption {
	return func(o *templOptions) {
		o.swap = style
	}
}

// WithTemplStatus sets the response status code. HTMX does not swap
// 4xx and 5xx responses by default.
func WithTemplStatus(status int) TemplOption {
	return func(o *templOptions) {
		o.status = status
	}
}

func newTemplOptions(opts []TemplOption) templOptions {
	o := templOptions{status: http.StatusOK}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o templOptions) writeHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if IsHTMX(r) {
		if o.target != "" {
			w.Header().Set(HXRetarget, o.target)
		}
		if o.swap != "" {
			w.Header().Set(HXReswap, o.swap)
		}
	}
	w.WriteHeader(o.status)
}

type templResponse struct {
	component templ.Component
	options   templOptions
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	t.options.writeHeaders(w, r)
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component.
//
//	return handler.Templ(view.Feedback(verr),
//		handler.WithTarget("#job-posting-feedback"),
//		handler.WithSwap(handler.SwapOuterHTML),
//	)
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: newTemplOptions(opts)}
}

type templPartialResponse struct {
	partial templ.Component
	full    templ.Component
	options templOptions
}

func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	t.options.writeHeaders(w, r)
	if IsHTMX(r) && !IsHTMXBoosted(r) {
		return t.partial.Render(r.Context(), w)
	}
	return t.full.Render(r.Context(), w)
}

// TemplPartial renders partial for HTMX requests and full otherwise.
// Boosted requests navigate whole pages and get full.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templPartialResponse{partial: partial, full: full, options: newTemplOptions(opts)}
}
