package i18n

import "errors"

var (
	ErrFailedToReadCatalog  = errors.New("failed to read translation catalog")
	ErrFailedToParseCatalog = errors.New("failed to parse translation catalog")
	ErrInvalidLanguage      = errors.New("invalid language tag")
	ErrNoCatalogs           = errors.New("no translation catalogs found")
)
