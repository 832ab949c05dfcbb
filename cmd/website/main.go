package main

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/summitair/website/modules/contact"
	"github.com/summitair/website/modules/vitals"
	"github.com/summitair/website/pkg/catalog"
	"github.com/summitair/website/pkg/config"
	"github.com/summitair/website/pkg/email"
	"github.com/summitair/website/pkg/httpserver"
	"github.com/summitair/website/pkg/logger"
	"github.com/summitair/website/pkg/ratelimiter"
	"github.com/summitair/website/pkg/redis"
	"github.com/summitair/website/pkg/requestid"
)

//go:embed static
var staticFiles embed.FS

type appConfig struct {
	Environment string        `env:"APP_ENV" envDefault:"development"`
	VitalsTTL   time.Duration `env:"VITALS_COUNTER_TTL" envDefault:"2160h"`
}

func main() {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		redisCfg   redis.Config
		emailCfg   email.Config
		contactCfg contact.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&contactCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, "website"),
		logger.WithContextExtractors(requestIDAttr),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("redis unavailable", slog.Any("error", err))
		os.Exit(1)
	}
	defer rdb.Close()

	var sender email.EmailSender
	if emailCfg.PostmarkServerToken != "" {
		sender, err = email.NewPostmarkSender(emailCfg)
		if err != nil {
			log.Error("postmark config invalid", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		log.Warn("no postmark token configured, writing emails to disk",
			slog.String("dir", emailCfg.DevOutputDir))
		sender = email.NewDevSender(emailCfg.DevOutputDir)
	}

	submitLimit, err := ratelimiter.NewBucket(
		ratelimiter.NewRedisStore(rdb, "ratelimit:contact"),
		ratelimiter.Config{
			Capacity:       contactCfg.SubmitPerHour,
			RefillRate:     contactCfg.SubmitPerHour,
			RefillInterval: time.Hour,
		},
	)
	if err != nil {
		log.Error("invalid rate limit config", slog.Any("error", err))
		os.Exit(1)
	}

	contactSvc := contact.NewService(contactCfg, contact.NewRedisStore(rdb), sender, log)
	vitalsRecorder := vitals.NewRedisRecorder(rdb, appCfg.VitalsTTL)

	r := chi.NewRouter()
	r.Use(requestid.Middleware())

	r.Get("/healthz", httpserver.Healthcheck())
	r.Get("/readyz", readiness(redis.Healthcheck(rdb)))

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", listServices)
		api.Mount("/contact", contact.Router(contactSvc, submitLimit, log))
		api.Mount("/vitals", vitals.Router(vitalsRecorder, log))
	})

	mountStatic(r)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func requestIDAttr(ctx context.Context) (slog.Attr, bool) {
	if id := requestid.FromContext(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func readiness(probe func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := probe(r.Context()); err != nil {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func listServices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_ = json.NewEncoder(w).Encode(catalog.Services())
}

func mountStatic(r chi.Router) {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	fileServer := http.FileServerFS(sub)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, sub, "index.html")
	})
	r.Handle("/css/*", fileServer)
	r.Handle("/js/*", fileServer)
}
