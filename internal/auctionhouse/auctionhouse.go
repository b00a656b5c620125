// Package auctionhouse is a narrow read-side cache over the out-of-scope
// auction house smart contract: it never executes a listing, bid, or
// settlement (that business logic lives entirely on-chain), and it never
// calls the contract's own view function either -- that function is
// unreliable on the deployed chain. Instead it rebuilds a durable,
// queryable projection from the Chain Driver's event-sourced
// RebuildCache(ctx, ContractAuctionHouse) scan and keeps it current with a
// periodic re-sync, the same split internal/reputation and internal/store
// use between an authoritative external source and a local read cache.
package auctionhouse

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Listing is one auction house row as answered to listActive/getListing/
// myListings callers.
type Listing struct {
	ListingID   string
	Seller      string
	TokenID     int64
	Quantity    int64
	PriceCopper int64
	Status      string
}

// Store is the pgx-backed durable cache. Postgres, not the in-memory
// projection onchain.ethDriver already holds, serves reads here because
// listActive/myListings need to filter and sort by seller/status -- an
// indexed table suits that far better than scanning a Go map on every
// request.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewStore wraps an already-connected pool. Callers dial with
// pgxpool.New(ctx, dsn) themselves so connection lifecycle (and the DSN
// source, config.Config) stays in the composition root.
func NewStore(pool *pgxpool.Pool, log zerolog.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// EnsureSchema creates the listings table if it doesn't already exist.
// Called once at startup; safe to call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS auction_listings (
			listing_id   TEXT PRIMARY KEY,
			seller       TEXT NOT NULL,
			token_id     BIGINT NOT NULL,
			quantity     BIGINT NOT NULL,
			price_copper BIGINT NOT NULL,
			status       TEXT NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS auction_listings_status_idx ON auction_listings (status);
		CREATE INDEX IF NOT EXISTS auction_listings_seller_idx ON auction_listings (seller);
	`)
	if err != nil {
		return rpgerr.Wrap(err, "auctionhouse: ensure schema")
	}
	return nil
}

// Sync rebuilds the chain driver's auction house projection and upserts
// every listing into the durable cache. Called once at startup (after a
// full RebuildCache) and then on a ticker from the composition root as the
// event-tail subscription (spec's §9 open question: the chain driver has no
// push-based log subscription of its own, so periodic re-scan stands in for
// one here).
func (s *Store) Sync(ctx context.Context, chain onchain.Driver) error {
	if err := chain.RebuildCache(ctx, onchain.ContractAuctionHouse); err != nil {
		return rpgerr.Wrap(err, "auctionhouse: rebuild cache")
	}
	listings, err := chain.AuctionListings(ctx)
	if err != nil {
		return rpgerr.Wrap(err, "auctionhouse: read projection")
	}

	batch := &pgx.Batch{}
	for _, l := range listings {
		batch.Queue(`
			INSERT INTO auction_listings (listing_id, seller, token_id, quantity, price_copper, status, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (listing_id) DO UPDATE SET
				status = EXCLUDED.status,
				updated_at = now()
		`, l.ListingID, l.Seller.Hex(), l.TokenID.Int64(), l.Quantity.Int64(), l.PriceCopper.Int64(), l.Status)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return rpgerr.Wrapf(err, "auctionhouse: upsert listing %d", i)
		}
	}
	return nil
}

// RunSync calls Sync on interval until ctx is canceled, logging (not
// failing) transient errors so one bad rescan window doesn't take the
// cache offline.
func (s *Store) RunSync(ctx context.Context, chain onchain.Driver, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sync(ctx, chain); err != nil {
				s.log.Error().Err(err).Msg("auctionhouse: sync failed")
			}
		}
	}
}

// ListActive returns every listing currently active, newest first.
func (s *Store) ListActive(ctx context.Context) ([]Listing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT listing_id, seller, token_id, quantity, price_copper, status
		FROM auction_listings WHERE status = 'active' ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, rpgerr.Wrap(err, "auctionhouse: list active")
	}
	defer rows.Close()
	return scanListings(rows)
}

// GetListing returns one listing by id, regardless of status.
func (s *Store) GetListing(ctx context.Context, listingID string) (Listing, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT listing_id, seller, token_id, quantity, price_copper, status
		FROM auction_listings WHERE listing_id = $1
	`, listingID)
	var l Listing
	if err := row.Scan(&l.ListingID, &l.Seller, &l.TokenID, &l.Quantity, &l.PriceCopper, &l.Status); err != nil {
		if err == pgx.ErrNoRows {
			return Listing{}, rpgerr.Newf(rpgerr.CodeNotFound, "listing %q not found", listingID)
		}
		return Listing{}, rpgerr.Wrap(err, "auctionhouse: get listing")
	}
	return l, nil
}

// MyListings returns every listing (any status) a seller has ever posted.
func (s *Store) MyListings(ctx context.Context, seller string) ([]Listing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT listing_id, seller, token_id, quantity, price_copper, status
		FROM auction_listings WHERE seller = $1 ORDER BY updated_at DESC
	`, seller)
	if err != nil {
		return nil, rpgerr.Wrap(err, "auctionhouse: my listings")
	}
	defer rows.Close()
	return scanListings(rows)
}

func scanListings(rows pgx.Rows) ([]Listing, error) {
	var out []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ListingID, &l.Seller, &l.TokenID, &l.Quantity, &l.PriceCopper, &l.Status); err != nil {
			return nil, rpgerr.Wrap(err, "auctionhouse: scan listing")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, rpgerr.Wrap(err, "auctionhouse: rows")
	}
	return out, nil
}
