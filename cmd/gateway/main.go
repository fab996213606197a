package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	api "github.com/bracu-tools/gradesheet-analyzer/internal/api/http"
	"github.com/bracu-tools/gradesheet-analyzer/internal/config"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

func main() {
	// .env is optional; env vars win either way
	_ = godotenv.Load()
	cfg := config.FromEnv()

	store := session.NewStore()
	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)

	// --- Janitor: sweep idle sessions ---
	c := cron.New()
	if _, err := c.AddFunc(cfg.SweepSchedule, func() {
		if n := store.Sweep(cfg.SessionMaxIdle); n > 0 {
			log.Printf("swept %d idle sessions (%d live)", n, store.Len())
		}
	}); err != nil {
		log.Fatalf("sweep schedule %q: %v", cfg.SweepSchedule, err)
	}
	c.Start()
	defer c.Stop()

	r := api.NewRouter(cfg, store, tokens)

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
