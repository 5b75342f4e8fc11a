// Package mongo connects to MongoDB with environment-driven configuration.
//
// New connects and pings the primary, retrying up to Config.RetryAttempts
// times with Config.RetryInterval between attempts. Waiting stops as soon as
// the context is done. Failures wrap ErrFailedToConnectToMongo.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
// Healthcheck adapts a client to the readiness checks accepted by
// httpserver.HealthCheckHandler:
//
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(db.Client())))
package mongo
