// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a handler that runs the registered ContextExtractor
// callbacks on each Handle call.
//
// # Usage
//
//	import "github.com/dmitrymomot/hirekit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "hirekit"),
//	    logger.WithConfig(logCfg),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "job posting rejected",
//	    logger.Field(verr.Field),
//	    logger.Kind(verr.Kind),
//	)
//
// # Attributes
//
// attr.go holds constructors for the keys used across the service
// (request_id, job_posting_id, org_id, field, kind, component and so on).
// Constructors taking an id or an error return an empty Attr for nil input,
// so they can be passed unconditionally:
//
//	log.Info("stored", logger.Error(err))
package logger
