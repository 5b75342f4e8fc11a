package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when a request carries no usable preference.
const DefaultLanguage = "en"

// Translator resolves message templates from per-language catalogs.
// Templates reference parameters as %{name}.
type Translator struct {
	defaultLang language.Tag
	tags        []language.Tag
	matcher     language.Matcher
	catalogs    map[language.Tag]map[string]string
	logger      *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when nothing else matches.
// Invalid tags are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if tag, err := language.Parse(lang); err == nil {
			t.defaultLang = tag
		}
	}
}

// WithLogger logs missing translations at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.logger = log
		}
	}
}

// NewTranslator loads catalogs from fsys. The default language needs no
// catalog of its own; callers keep their built-in text for it.
func NewTranslator(fsys fs.FS, opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultLang: language.MustParse(DefaultLanguage),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := loadCatalogs(fsys)
	if err != nil {
		return nil, err
	}
	t.catalogs = catalogs

	// matcher falls back to the first tag
	t.tags = []language.Tag{t.defaultLang}
	for tag := range catalogs {
		if tag != t.defaultLang {
			t.tags = append(t.tags, tag)
		}
	}
	slices.SortFunc(t.tags[1:], func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	t.matcher = language.NewMatcher(t.tags)

	return t, nil
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []string {
	langs := make([]string, len(t.tags))
	for i, tag := range t.tags {
		langs[i] = tag.String()
	}
	return langs
}

// Match picks the best supported language for an Accept-Language header value.
func (t *Translator) Match(preferences ...string) string {
	var wanted []language.Tag
	for _, p := range preferences {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return t.defaultLang.String()
	}

	_, idx, conf := t.matcher.Match(wanted...)
	if conf == language.No {
		return t.defaultLang.String()
	}
	return t.tags[idx].String()
}

// T renders key for lang. ok is false when lang has no template for key;
// callers then keep their own text.
func (t *Translator) T(lang, key string, params map[string]any) (string, bool) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	tmpl, ok := t.catalogs[tag][key]
	if !ok {
		if tag != t.defaultLang {
			t.logger.Debug("missing translation", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}
	return render(tmpl, params), true
}

// Tc renders key for the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, params map[string]any) (string, bool) {
	return t.T(GetLocale(ctx), key, params)
}

func render(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "%{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
