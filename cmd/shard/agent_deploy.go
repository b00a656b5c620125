package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/agent"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/config"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/goldledger"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/party"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/quest"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/reputation"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// agentDeployCmd is an operator-facing shortcut for the same flow
// POST /agent/deploy drives over HTTP, useful for seeding test/demo
// characters without a running HTTP client.
var agentDeployCmd = &cobra.Command{
	Use:   "agent-deploy",
	Short: "Deploy one autonomous agent character outside the HTTP API",
	RunE:  runAgentDeploy,
}

var (
	agentDeployWallet string
	agentDeployName   string
	agentDeployZone   string
	agentDeployRace   string
	agentDeployClass  string
	agentDeployGender string
	agentDeployFocus  string
)

func init() {
	agentDeployCmd.Flags().StringVar(&agentDeployWallet, "owner-wallet", "", "owner wallet address (required)")
	agentDeployCmd.Flags().StringVar(&agentDeployName, "name", "Agent", "character name")
	agentDeployCmd.Flags().StringVar(&agentDeployZone, "zone", "starting-zone", "zone id to spawn into")
	agentDeployCmd.Flags().StringVar(&agentDeployRace, "race", "human", "race id")
	agentDeployCmd.Flags().StringVar(&agentDeployClass, "class", "warrior", "class id")
	agentDeployCmd.Flags().StringVar(&agentDeployGender, "gender", "unspecified", "gender")
	agentDeployCmd.Flags().StringVar(&agentDeployFocus, "focus", "gathering", "agent focus (combat, gathering, crafting)")
	agentDeployCmd.MarkFlagRequired("owner-wallet")
}

func runAgentDeploy(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()

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
	resolver := combat.NewResolver(combat.Config{Catalog: catalogStore, Party: parties, Ledger: ledger, EventBus: bus, Log: log})
	runtime.SetDeathHandler(resolver)

	dispatcher := action.NewDispatcher(action.Config{
		Runtime:    runtime,
		Catalog:    catalogStore,
		Combat:     resolver,
		Store:      persistence,
		Chain:      chain,
		Ledger:     ledger,
		Reputation: reputation.NewManager(),
		Quest:      quest.NewManager(),
		Log:        log,
	})

	agents := agent.NewManager(agent.ManagerConfig{
		Dispatcher:    dispatcher,
		Runtime:       runtime,
		Store:         persistence,
		Chain:         chain,
		Log:           log,
		EncryptionKey: []byte(cfg.EncryptionKey),
	})

	result, err := agents.Deploy(ctx, agent.DeployRequest{
		OwnerWallet: agentDeployWallet,
		Name:        agentDeployName,
		ZoneID:      agentDeployZone,
		RaceID:      agentDeployRace,
		ClassID:     agentDeployClass,
		Gender:      agentDeployGender,
		Focus:       agentDeployFocus,
	})
	if err != nil {
		return err
	}
	fmt.Printf("deployed agent: custodialWallet=%s characterToken=%d entityId=%s\n",
		result.CustodialWallet, result.CharacterToken, result.EntityID)
	return nil
}
