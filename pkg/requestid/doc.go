// Package requestid tags every HTTP request with an identifier that is
// echoed in the X-Request-ID response header and attached to log records.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Incoming ids longer than 128 characters or containing anything other than
// letters, digits, '-' and '_' are replaced with a fresh UUID.
package requestid
