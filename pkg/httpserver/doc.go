// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, the process receives SIGINT or SIGTERM,
// or Shutdown is called, and then drains in-flight requests for at most the
// shutdown timeout. Errors wrap ErrStart or ErrShutdown.
//
// HealthCheckHandler serves liveness (no checks) and readiness (one or more
// dependency checks, such as the Mongo ping) probes.
package httpserver
