package main

import (
	"log"
	"net/http"
	"time"

	"github.com/HelioOssola/cep-distance/internal/delegateapi"
	"github.com/HelioOssola/cep-distance/internal/platform/config"
	"github.com/HelioOssola/cep-distance/internal/platform/logging"
)

// distanced is the distance-delegate peer. The primary API posts two
// coordinate pairs here when DISTANCE_BACKEND=remote.
func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer logging.Sync()

	srv := &http.Server{
		Addr:              ":" + cfg.DelegatePort,
		Handler:           delegateapi.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info("distance delegate listening", "addr", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}
