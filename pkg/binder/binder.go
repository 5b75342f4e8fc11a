package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Func binds an HTTP request into v.
type Func func(r *http.Request, v any) error

// mediaType returns the request media type, or an error wrapping
// ErrMissingContentType.
func mediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, nil
}
