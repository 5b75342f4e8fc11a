package jobposting

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/hirekit/pkg/validator"
)

// FeedbackElementID is the DOM id of the live validation fragment.
const FeedbackElementID = "job-posting-feedback"

// Feedback renders the live validation result for a posting form.
// A nil err renders the success state.
func Feedback(err *validator.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err == nil {
			b.WriteString(`<div id="` + FeedbackElementID + `" class="feedback feedback-ok" role="status">`)
			b.WriteString("Looks good")
		} else {
			b.WriteString(`<div id="` + FeedbackElementID + `" class="feedback feedback-error" role="alert" data-field="`)
			b.WriteString(templ.EscapeString(err.Field))
			b.WriteString(`" data-kind="`)
			b.WriteString(templ.EscapeString(string(err.Kind)))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(err.Message))
		}
		b.WriteString("</div>")
		_, werr := io.WriteString(w, b.String())
		return werr
	})
}

// Preview renders a validated posting. The description has already been
// reduced to the rich text allow-list; every other value is escaped.
func Preview(p *JobPosting) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="job-posting"><h1>`)
		b.WriteString(templ.EscapeString(p.JobTitle))
		b.WriteString("</h1>")
		if meta := previewMeta(p); meta != "" {
			b.WriteString(`<p class="job-posting-meta">`)
			b.WriteString(templ.EscapeString(meta))
			b.WriteString("</p>")
		}
		b.WriteString(`<section class="job-posting-description">`)
		b.WriteString(p.Description)
		b.WriteString("</section>")
		if len(p.Skills) > 0 {
			b.WriteString(`<ul class="job-posting-skills">`)
			for _, skill := range p.Skills {
				b.WriteString("<li>")
				b.WriteString(templ.EscapeString(skill))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</article>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// CheckPage renders the full check page: the preview when input is valid,
// followed by the feedback fragment.
func CheckPage(p *JobPosting, err *validator.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, werr := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Job posting check</title></head><body>`); werr != nil {
			return werr
		}
		if p != nil {
			if rerr := Preview(p).Render(ctx, w); rerr != nil {
				return rerr
			}
		}
		if rerr := Feedback(err).Render(ctx, w); rerr != nil {
			return rerr
		}
		_, werr := io.WriteString(w, "</body></html>")
		return werr
	})
}

func previewMeta(p *JobPosting) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Department, p.Location, p.EmploymentType} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.Remote {
		parts = append(parts, "Remote")
	}
	return strings.Join(parts, " · ")
}
