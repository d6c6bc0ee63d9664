// Command surebet-api serves the slip conversion pipeline over HTTP, with a
// separate Prometheus metrics endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/api"
	"github.com/bielsr01/BetTrackerPro/internal/config"
	"github.com/bielsr01/BetTrackerPro/internal/logging"
	"github.com/bielsr01/BetTrackerPro/internal/metrics"
)

var (
	slipsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slips_processed_total",
		Help: "Slip conversion attempts by outcome.",
	}, []string{"outcome"})

	legsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slip_legs_extracted_total",
		Help: "Total bet legs extracted from converted slips.",
	})
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file (defaults apply when omitted)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log, err := logging.New(api.ServiceName, cfg.Logging.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	metrics.StartServer(cfg.Server.MetricsPort, func(ctx context.Context) error {
		return nil
	})
	log.Info("metrics server started", zap.String("port", cfg.Server.MetricsPort))

	app := fiber.New(fiber.Config{
		AppName:   api.ServiceName,
		BodyLimit: cfg.Server.BodyLimitMB << 20,
	})

	h := &api.Handler{
		Log:      log,
		MaxPages: cfg.Extract.MaxPages,
		OnProcessed: func(outcome string) {
			slipsProcessed.WithLabelValues(outcome).Inc()
		},
		OnLegs: func(n int) {
			legsExtracted.Add(float64(n))
		},
	}
	h.Register(app)

	log.Info("api server starting", zap.String("port", cfg.Server.HTTPPort))
	if err := app.Listen(":" + cfg.Server.HTTPPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
