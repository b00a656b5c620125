// Package config loads the shard's runtime configuration from recognized
// environment variables via viper, the same env-driven configuration style
// the rest of the pack's cobra-based CLIs use to keep a single binary
// deployable without a config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Config is every value the shard's composition root needs to wire up the
// chain driver, persistence, the agent LLM client, and the HTTP surface.
type Config struct {
	ChainRPCURL      string
	ChainID          int64
	ServerPrivKey    string
	AuctionHouse     common.Address
	GoldContract     common.Address
	ItemContract     common.Address
	CharContract     common.Address
	ReputContract    common.Address
	RedisURL         string // empty means in-memory fallback
	LLMAPIKey        string
	LLMModel         string
	Port             string
	APIURL           string
	EncryptionKey    string
	CatalogDir       string
	AuctionSyncEvery time.Duration
}

// Load reads every recognized env var, applying the same defaults the
// shard has always shipped with for local/dev use (spf13/viper's
// SetDefault + AutomaticEnv, rather than a config file -- this shard has
// none).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("CHAIN_ID", 31337)
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("CATALOG_DIR", "./data/catalog")
	v.SetDefault("AUCTION_SYNC_SECONDS", 30)

	cfg := &Config{
		ChainRPCURL:      v.GetString("CHAIN_RPC_URL"),
		ChainID:          v.GetInt64("CHAIN_ID"),
		ServerPrivKey:    v.GetString("SERVER_PRIVATE_KEY"),
		RedisURL:         v.GetString("REDIS_URL"),
		LLMAPIKey:        v.GetString("LLM_API_KEY"),
		LLMModel:         v.GetString("LLM_MODEL"),
		Port:             v.GetString("PORT"),
		APIURL:           v.GetString("API_URL"),
		EncryptionKey:    v.GetString("ENCRYPTION_KEY"),
		CatalogDir:       v.GetString("CATALOG_DIR"),
		AuctionSyncEvery: time.Duration(v.GetInt64("AUCTION_SYNC_SECONDS")) * time.Second,
	}

	for name, dst := range map[string]*common.Address{
		"AUCTION_HOUSE_CONTRACT_ADDRESS": &cfg.AuctionHouse,
		"GOLD_CONTRACT_ADDRESS":          &cfg.GoldContract,
		"ITEM_CONTRACT_ADDRESS":          &cfg.ItemContract,
		"CHARACTER_CONTRACT_ADDRESS":     &cfg.CharContract,
		"REPUTATION_CONTRACT_ADDRESS":    &cfg.ReputContract,
	} {
		raw := v.GetString(name)
		if raw == "" {
			continue
		}
		if !common.IsHexAddress(raw) {
			return nil, rpgerr.Newf(rpgerr.CodeInvalidArgument, "config: %s is not a valid address: %q", name, raw)
		}
		*dst = common.HexToAddress(raw)
	}

	if cfg.ChainRPCURL == "" {
		return nil, rpgerr.New(rpgerr.CodeInvalidArgument, "config: CHAIN_RPC_URL is required")
	}
	if cfg.EncryptionKey == "" {
		return nil, rpgerr.New(rpgerr.CodeInvalidArgument, "config: ENCRYPTION_KEY is required")
	}

	return cfg, nil
}

// Addresses maps the loaded contract addresses to onchain.Addresses.
func (c *Config) Addresses() onchain.Addresses {
	return onchain.Addresses{
		Gold:         c.GoldContract,
		Item:         c.ItemContract,
		Character:    c.CharContract,
		Reputation:   c.ReputContract,
		AuctionHouse: c.AuctionHouse,
	}
}

// DSN builds a postgres connection string for the auction house cache from
// the same REDIS_URL-shaped convention the rest of config uses: an
// AUCTION_DB_URL env var if set, with no default (the schema auto-creates,
// but the instance itself must be provisioned).
func (c *Config) DSN() string {
	v := viper.New()
	v.AutomaticEnv()
	return v.GetString("AUCTION_DB_URL")
}

func (c *Config) String() string {
	return fmt.Sprintf("config{chain=%s chainID=%d port=%s catalogDir=%s}", c.ChainRPCURL, c.ChainID, c.Port, c.CatalogDir)
}
