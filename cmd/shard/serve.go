package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/agent"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/authtoken"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/config"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/goldledger"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/httpapi"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/merchant"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/party"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/quest"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/reputation"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// tickInterval is how often the zone runtime advances: one authoritative
// tick loop per shard process.
const tickInterval = 1 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the shard's tick loop and HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.Info().Str("config", cfg.String()).Msg("shard: starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogStore, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		redisClient = redis.NewClient(opts)
	}
	persistence := store.New(redisClient, log)

	chain, err := newChainDriver(ctx, cfg, log)
	if err != nil {
		return err
	}

	bus := events.NewEventBus()
	runtime := zone.NewRuntime(zone.RuntimeConfig{Catalog: catalogStore, EventBus: bus, Log: log})

	parties := party.NewManager()
	ledger := goldledger.New(log)
	reput := reputation.NewManager()
	quests := quest.NewManager()

	merchants := merchant.NewManager(chain, bus, log)
	go merchants.Run(ctx)

	resolver := combat.NewResolver(combat.Config{
		Catalog:  catalogStore,
		Party:    parties,
		Ledger:   ledger,
		EventBus: bus,
		Log:      log,
	})
	runtime.SetDeathHandler(resolver)

	dispatcher := action.NewDispatcher(action.Config{
		Runtime:    runtime,
		Catalog:    catalogStore,
		Combat:     resolver,
		Store:      persistence,
		Chain:      chain,
		Ledger:     ledger,
		Merchant:   merchants,
		Reputation: reput,
		Quest:      quests,
		Log:        log,
	})

	llm := agent.NewHeuristicLLMClient()
	if cfg.LLMAPIKey != "" {
		llm = agent.NewHTTPLLMClient(cfg.APIURL, cfg.LLMAPIKey)
	}
	agents := agent.NewManager(agent.ManagerConfig{
		Dispatcher:    dispatcher,
		Runtime:       runtime,
		Store:         persistence,
		Chain:         chain,
		LLM:           llm,
		Log:           log,
		EncryptionKey: []byte(cfg.EncryptionKey),
	})

	auctions, err := newAuctionHouse(ctx, cfg, chain, log)
	if err != nil {
		log.Warn().Err(err).Msg("shard: auction house cache disabled")
	}

	server := httpapi.NewServer(httpapi.Config{
		Dispatcher:   dispatcher,
		Runtime:      runtime,
		Catalog:      catalogStore,
		Store:        persistence,
		Agents:       agents,
		Party:        parties,
		Quest:        quests,
		Reputation:   reput,
		Auctionhouse: auctions,
		AuthIssuer:   authtoken.NewIssuer(cfg.EncryptionKey),
		Log:          log,
	})

	go runTickLoop(ctx, runtime)

	srv := server.Router()
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(":" + cfg.Port); err != nil {
			errCh <- err
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("shard: listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Info().Msg("shard: shutting down")
	case err := <-errCh:
		return err
	}
	return nil
}

// runTickLoop advances every zone's tick on a fixed interval until ctx is
// canceled. Drives combat, effects, cooldowns, and regen for every live
// entity.
func runTickLoop(ctx context.Context, runtime *zone.Runtime) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runtime.Tick()
		}
	}
}
