package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	dialoguex "github.com/pattarin-dev/unistock/agent/agents/dialogue"
	statex "github.com/pattarin-dev/unistock/agent/state"
	"github.com/pattarin-dev/unistock/inventory"
	configx "github.com/pattarin-dev/unistock/pkg/config"
	_ "github.com/pattarin-dev/unistock/pkg/logger/autoload"
	serverx "github.com/pattarin-dev/unistock/server"
)

type AppConfig struct {
	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:":3000"`
	SessionBackend   string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionReapAfter time.Duration `envconfig:"SESSION_REAP_AFTER" default:"0"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	pgCfg := configx.MustNew[inventory.Config]("POSTGRES")
	db := inventory.Connect(*pgCfg)
	defer db.Close()

	ctx := context.Background()
	if err := inventory.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("init inventory schema")
	}
	if err := inventory.Seed(ctx, db, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("seed inventory")
	}
	repo := inventory.NewRepository(db)

	store := newSessionStore(appCfg)

	engine, err := dialoguex.New(store, repo)
	if err != nil {
		log.Fatal().Err(err).Msg("build dialogue engine")
	}

	srv := serverx.New(engine, repo)

	log.Info().
		Str("addr", appCfg.HTTPAddr).
		Str("session_backend", appCfg.SessionBackend).
		Msg("uniform stock assistant listening")
	if err := http.ListenAndServe(appCfg.HTTPAddr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func newSessionStore(cfg *AppConfig) statex.Store {
	if cfg.SessionBackend == "upstash" {
		upstashCfg := configx.MustNew[statex.UpstashRedisConfig]("UPSTASH")
		store, err := statex.NewUpstashRedisStore(*upstashCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build upstash session store")
		}
		return store
	}

	store := statex.NewMemoryStore()
	if cfg.SessionReapAfter > 0 {
		go reapLoop(store, cfg.SessionReapAfter)
	}
	return store
}

// reapLoop evicts abandoned mid-flow sessions. Off by default: sessions
// have no TTL unless SESSION_REAP_AFTER is set.
func reapLoop(store *statex.MemoryStore, after time.Duration) {
	ticker := time.NewTicker(after)
	defer ticker.Stop()
	for range ticker.C {
		if removed := store.Reap(after, time.Now()); removed > 0 {
			log.Debug().Int("removed", removed).Msg("reaped idle sessions")
		}
	}
}
