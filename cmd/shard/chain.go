package main

import (
	"context"
	"math/big"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/auctionhouse"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/config"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
)

// stubChainRPCURL lets local dev and CI run the shard against
// onchain.StubDriver instead of a live node, without a special-cased flag.
const stubChainRPCURL = "stub"

func newChainDriver(ctx context.Context, cfg *config.Config, log zerolog.Logger) (onchain.Driver, error) {
	if cfg.ChainRPCURL == stubChainRPCURL {
		log.Warn().Msg("shard: using in-memory stub chain driver, no on-chain state is durable")
		return onchain.NewStubDriver(), nil
	}
	return onchain.NewDriver(ctx, onchain.Config{
		RPCURL:       cfg.ChainRPCURL,
		Addresses:    cfg.Addresses(),
		SignerKeyHex: cfg.ServerPrivKey,
		ChainID:      big.NewInt(cfg.ChainID),
		RescanWindow: 5000,
		Log:          log,
	})
}

// newAuctionHouse wires the pgx-backed auction house cache. A missing
// AUCTION_DB_URL disables the feature rather than failing startup: the
// auction house is a read-side convenience over an otherwise independent
// on-chain contract, not core to the shard's tick loop.
func newAuctionHouse(ctx context.Context, cfg *config.Config, chain onchain.Driver, log zerolog.Logger) (*auctionhouse.Store, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		return nil, nil
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	store := auctionhouse.NewStore(pool, log)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if err := store.Sync(ctx, chain); err != nil {
		log.Warn().Err(err).Msg("auctionhouse: initial sync failed")
	}
	go store.RunSync(ctx, chain, cfg.AuctionSyncEvery)
	return store, nil
}
