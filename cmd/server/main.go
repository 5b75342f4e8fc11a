package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/hirekit/handler"
	"github.com/dmitrymomot/hirekit/locales"
	jobpostingmod "github.com/dmitrymomot/hirekit/modules/jobposting"
	"github.com/dmitrymomot/hirekit/pkg/clientip"
	"github.com/dmitrymomot/hirekit/pkg/config"
	"github.com/dmitrymomot/hirekit/pkg/environment"
	"github.com/dmitrymomot/hirekit/pkg/httpserver"
	"github.com/dmitrymomot/hirekit/pkg/i18n"
	"github.com/dmitrymomot/hirekit/pkg/logger"
	"github.com/dmitrymomot/hirekit/pkg/mongo"
	"github.com/dmitrymomot/hirekit/pkg/ratelimiter"
	"github.com/dmitrymomot/hirekit/pkg/requestid"
	"github.com/dmitrymomot/hirekit/svc/jobposting"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"hirekit"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		mongoCfg mongo.Config
		limitCfg ratelimiter.Config
		logCfg   logger.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&mongoCfg); err != nil {
		return err
	}
	if err := config.Load(&limitCfg); err != nil {
		return err
	}
	if err := config.Load(&logCfg); err != nil {
		return err
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Service),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Client().Disconnect(context.WithoutCancel(ctx)); err != nil {
			log.Error("failed to disconnect from mongo", logger.Error(err))
		}
	}()

	storage := jobposting.NewMongoStorage(db)
	if err := storage.EnsureIndexes(ctx); err != nil {
		return err
	}
	svc := jobposting.NewService(storage, jobposting.WithLogger(log.With(logger.Component("jobposting"))))

	translator, err := i18n.NewTranslator(locales.FS, i18n.WithLogger(log.With(logger.Component("i18n"))))
	if err != nil {
		return err
	}

	limitStore := ratelimiter.NewMemoryStore()
	limitStore.StartPruning(ctx, 5*time.Minute, time.Hour)
	checkLimiter, err := ratelimiter.NewBucket(limitStore, limitCfg)
	if err != nil {
		return err
	}
	checkLimit := ratelimiter.Middleware(checkLimiter, ratelimiter.ClientIP,
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
			_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
		}),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		i18n.Middleware(translator),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(db.Client())))
	r.Mount("/", jobpostingmod.Router(jobpostingmod.NewHandlers(svc, log,
		jobpostingmod.WithCheckMiddleware(checkLimit),
		jobpostingmod.WithTranslator(translator),
	)))

	server := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return server.Run(ctx, r)
}
