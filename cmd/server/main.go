package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/HelioOssola/cep-distance/internal/adapters/distance"
	"github.com/HelioOssola/cep-distance/internal/adapters/nominatim"
	"github.com/HelioOssola/cep-distance/internal/adapters/repositories"
	"github.com/HelioOssola/cep-distance/internal/adapters/viacep"
	"github.com/HelioOssola/cep-distance/internal/api"
	"github.com/HelioOssola/cep-distance/internal/api/handlers"
	"github.com/HelioOssola/cep-distance/internal/platform/config"
	"github.com/HelioOssola/cep-distance/internal/platform/db"
	"github.com/HelioOssola/cep-distance/internal/platform/logging"
	"github.com/HelioOssola/cep-distance/internal/platform/metrics"
	"github.com/HelioOssola/cep-distance/internal/ports"
	"github.com/HelioOssola/cep-distance/internal/services"
)

// main is the primary API composition root. It wires concrete adapters
// (ViaCEP, Nominatim, local or delegate distance backend, sqlite or postgres
// store) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer logging.Sync()

	repo, err := openRepository(cfg)
	if err != nil {
		logging.Fatal("open record store", "error", err.Error())
	}

	resolver := viacep.NewClient(cfg.ViaCEPBaseURL)
	geocoder := nominatim.NewClient(cfg.NominatimBaseURL, cfg.GeocoderUserAgent)

	var provider ports.DistanceProvider
	switch cfg.DistanceBackend {
	case "remote":
		provider, err = distance.NewDelegateProvider(cfg.DelegateURL)
		if err != nil {
			logging.Fatal("configure distance delegate", "error", err.Error())
		}
	default:
		provider = distance.NewLocalProvider()
	}

	svc := services.NewDistanceQueryService(resolver, geocoder, provider, repo)
	reg := metrics.NewRegistry()
	handler := &handlers.RecordHandler{Service: svc, Metrics: reg}
	router := api.NewRouter(handler, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Cold runs block on two lookups, two geocodes and a delegate call.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Info("server listening",
		"addr", srv.Addr,
		"db_driver", cfg.DBDriver,
		"distance_backend", cfg.DistanceBackend,
	)
	log.Fatal(srv.ListenAndServe())
}

// openRepository picks the store backend and runs idempotent schema
// initialization before the service accepts traffic.
func openRepository(cfg config.Config) (ports.RecordRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.DBDriver {
	case "postgres":
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo := repositories.NewPostgresRecordRepository(conn)
		if err := repo.InitSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		repo := repositories.NewSqliteRecordRepository(conn)
		if err := repo.InitSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	}
}
