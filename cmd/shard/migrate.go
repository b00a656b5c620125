package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/auctionhouse"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/config"
)

// migrateCatalogCmd validates the catalog data directory loads cleanly and,
// if an auction house database is configured, ensures its schema exists --
// a single idempotent command to run before a deploy, the same role
// cuemby/warren's own "cluster init" plays for that project's Raft store.
var migrateCatalogCmd = &cobra.Command{
	Use:   "migrate-catalog",
	Short: "Validate the catalog data directory and ensure the auction house schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := catalog.Load(cfg.CatalogDir)
		if err != nil {
			return err
		}
		log.Info().
			Int("items", len(store.AllItems())).
			Int("techniques", len(store.AllTechniques())).
			Int("quests", len(store.AllQuests())).
			Msg("migrate-catalog: catalog loaded")

		dsn := cfg.DSN()
		if dsn == "" {
			log.Info().Msg("migrate-catalog: AUCTION_DB_URL unset, skipping auction house schema")
			return nil
		}
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		defer pool.Close()
		ah := auctionhouse.NewStore(pool, log)
		if err := ah.EnsureSchema(ctx); err != nil {
			return err
		}
		log.Info().Msg("migrate-catalog: auction house schema ensured")
		return nil
	},
}
