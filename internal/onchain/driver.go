// Package onchain is the narrow adapter between the shard server and the
// external EVM-style ledger: gold balances, item mint/burn/transfer, and
// historical event scans used to rebuild a local projection when the chain's
// own read path is unreliable.
//
// Economically meaningful writes (mint/burn/transfer) are not idempotent
// from the caller's point of view: retried transactions against the same
// authorized write path succeed or fail deterministically, but it is the
// caller's job (internal/goldledger, internal/action) to serialize writes
// per wallet so two concurrent spends never race.
package onchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Contract names the five on-chain contracts the driver talks to.
type Contract string

const (
	ContractGold         Contract = "gold"
	ContractItem         Contract = "item"
	ContractCharacter    Contract = "character"
	ContractReputation   Contract = "reputation"
	ContractAuctionHouse Contract = "auctionHouse"
)

// AuctionListing is one row of the auction house's rebuilt state: the
// current status of a listing as derived purely from its Listed/Sold/
// Cancelled event history, never from the contract's own view function --
// that view function is unreliable on the deployed chain.
type AuctionListing struct {
	ListingID   string
	Seller      common.Address
	TokenID     *big.Int
	Quantity    *big.Int
	PriceCopper *big.Int
	Status      string // "active", "sold", "cancelled"
}

// Driver is the chain driver's public contract.
type Driver interface {
	GoldBalance(ctx context.Context, addr common.Address) (*big.Int, error)
	ItemBalance(ctx context.Context, addr common.Address, tokenID *big.Int) (*big.Int, error)
	MintGold(ctx context.Context, addr common.Address, copper *big.Int) (common.Hash, error)
	MintItem(ctx context.Context, addr common.Address, tokenID *big.Int, qty *big.Int) (common.Hash, error)
	BurnItem(ctx context.Context, addr common.Address, tokenID *big.Int, qty *big.Int) (common.Hash, error)
	TransferItem(ctx context.Context, from, to common.Address, tokenID *big.Int, qty *big.Int) (common.Hash, error)
	NextID(ctx context.Context, contract Contract) (*big.Int, error)
	RebuildCache(ctx context.Context, contract Contract) error
	// AuctionListings returns the auction house's projection as of the last
	// RebuildCache(ctx, ContractAuctionHouse) call. internal/auctionhouse
	// calls this after each rebuild/tail-poll to re-sync its own durable
	// cache; the projection itself is never queried directly by callers
	// outside this package.
	AuctionListings(ctx context.Context) ([]AuctionListing, error)
}

// Addresses configures the contract addresses the driver binds to.
type Addresses struct {
	Gold         common.Address
	Item         common.Address
	Character    common.Address
	Reputation   common.Address
	AuctionHouse common.Address
}

// Config configures a live ethDriver.
type Config struct {
	RPCURL       string
	Addresses    Addresses
	SignerKeyHex string // hex-encoded ECDSA private key for the operator/custodial signer path
	ChainID      *big.Int
	// RescanWindow bounds how many blocks RebuildCache scans per eth_getLogs
	// call; large windows can exceed node query limits.
	RescanWindow uint64
	Log          zerolog.Logger
}

// ethDriver is the live go-ethereum-backed Driver implementation.
type ethDriver struct {
	client    *ethclient.Client
	addresses Addresses
	signer    *bind.TransactOpts
	chainID   *big.Int
	window    uint64
	log       zerolog.Logger

	goldABI  abi.ABI
	itemABI  abi.ABI
	charABI  abi.ABI
	repABI   abi.ABI
	auctABI  abi.ABI

	mu    sync.Mutex // serializes nonce-sensitive transact calls from this process
	cache *projection
}

// projection is the in-memory rebuild target for RebuildCache: a snapshot
// derived purely from historical events, used when a contract's own view
// functions are unreliable or rate-limited.
type projection struct {
	mu       sync.RWMutex
	goldBal  map[common.Address]*big.Int
	itemBal  map[common.Address]map[string]*big.Int // key: tokenID.String()
	nextIDs  map[Contract]*big.Int
	listings map[string]AuctionListing // key: listingId.String()
}

func newProjection() *projection {
	return &projection{
		goldBal:  map[common.Address]*big.Int{},
		itemBal:  map[common.Address]map[string]*big.Int{},
		nextIDs:  map[Contract]*big.Int{},
		listings: map[string]AuctionListing{},
	}
}

// NewDriver dials the configured RPC endpoint and binds the five contracts.
func NewDriver(ctx context.Context, cfg Config) (Driver, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeExternalOutage, fmt.Sprintf("onchain: dial %s", cfg.RPCURL))
	}

	goldABI, err := abi.JSON(strings.NewReader(erc20LikeABI))
	if err != nil {
		return nil, rpgerr.Wrap(err, "onchain: parse gold abi")
	}
	itemABI, err := abi.JSON(strings.NewReader(erc1155LikeABI))
	if err != nil {
		return nil, rpgerr.Wrap(err, "onchain: parse item abi")
	}
	charABI, err := abi.JSON(strings.NewReader(erc721LikeABI))
	if err != nil {
		return nil, rpgerr.Wrap(err, "onchain: parse character abi")
	}
	repABI, err := abi.JSON(strings.NewReader(reputationABI))
	if err != nil {
		return nil, rpgerr.Wrap(err, "onchain: parse reputation abi")
	}
	auctABI, err := abi.JSON(strings.NewReader(auctionHouseABI))
	if err != nil {
		return nil, rpgerr.Wrap(err, "onchain: parse auction house abi")
	}

	var signer *bind.TransactOpts
	if cfg.SignerKeyHex != "" {
		key, err := parsePrivateKeyHex(cfg.SignerKeyHex)
		if err != nil {
			return nil, rpgerr.Wrap(err, "onchain: parse signer key")
		}
		signer, err = bind.NewKeyedTransactorWithChainID(key, cfg.ChainID)
		if err != nil {
			return nil, rpgerr.Wrap(err, "onchain: build transactor")
		}
	}

	window := cfg.RescanWindow
	if window == 0 {
		window = 5000
	}

	return &ethDriver{
		client:    client,
		addresses: cfg.Addresses,
		signer:    signer,
		chainID:   cfg.ChainID,
		window:    window,
		log:       cfg.Log,
		goldABI:   goldABI,
		itemABI:   itemABI,
		charABI:   charABI,
		repABI:    repABI,
		auctABI:   auctABI,
		cache:     newProjection(),
	}, nil
}

func (d *ethDriver) bound(contract Contract) (*bind.BoundContract, common.Address, error) {
	switch contract {
	case ContractGold:
		return bind.NewBoundContract(d.addresses.Gold, d.goldABI, d.client, d.client, d.client), d.addresses.Gold, nil
	case ContractItem:
		return bind.NewBoundContract(d.addresses.Item, d.itemABI, d.client, d.client, d.client), d.addresses.Item, nil
	case ContractCharacter:
		return bind.NewBoundContract(d.addresses.Character, d.charABI, d.client, d.client, d.client), d.addresses.Character, nil
	case ContractReputation:
		return bind.NewBoundContract(d.addresses.Reputation, d.repABI, d.client, d.client, d.client), d.addresses.Reputation, nil
	case ContractAuctionHouse:
		return bind.NewBoundContract(d.addresses.AuctionHouse, d.auctABI, d.client, d.client, d.client), d.addresses.AuctionHouse, nil
	default:
		return nil, common.Address{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "onchain: unknown contract %q", contract)
	}
}

func (d *ethDriver) GoldBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	bound, _, err := d.bound(ContractGold)
	if err != nil {
		return nil, err
	}
	var out []any
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", addr); err != nil {
		return nil, rpgerr.Wrapf(err, "onchain: goldBalance(%s)", addr)
	}
	return out[0].(*big.Int), nil
}

func (d *ethDriver) ItemBalance(ctx context.Context, addr common.Address, tokenID *big.Int) (*big.Int, error) {
	bound, _, err := d.bound(ContractItem)
	if err != nil {
		return nil, err
	}
	var out []any
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", addr, tokenID); err != nil {
		return nil, rpgerr.Wrapf(err, "onchain: itemBalance(%s, %s)", addr, tokenID)
	}
	return out[0].(*big.Int), nil
}

func (d *ethDriver) MintGold(ctx context.Context, addr common.Address, copper *big.Int) (common.Hash, error) {
	return d.transact(ctx, ContractGold, "mint", addr, copper)
}

func (d *ethDriver) MintItem(ctx context.Context, addr common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	return d.transact(ctx, ContractItem, "mint", addr, tokenID, qty)
}

func (d *ethDriver) BurnItem(ctx context.Context, addr common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	return d.transact(ctx, ContractItem, "burn", addr, tokenID, qty)
}

func (d *ethDriver) TransferItem(ctx context.Context, from, to common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	return d.transact(ctx, ContractItem, "safeTransferFrom", from, to, tokenID, qty)
}

// transact serializes signing + sending: go-ethereum's TransactOpts carries
// a per-signer nonce that must not be read concurrently for two in-flight
// sends from this process.
func (d *ethDriver) transact(ctx context.Context, contract Contract, method string, args ...any) (common.Hash, error) {
	if d.signer == nil {
		return common.Hash{}, rpgerr.New(rpgerr.CodeInternal, "onchain: driver has no signer configured")
	}
	bound, addr, err := d.bound(contract)
	if err != nil {
		return common.Hash{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	opts := *d.signer
	opts.Context = ctx

	tx, err := bound.Transact(&opts, method, args...)
	if err != nil {
		return common.Hash{}, rpgerr.Wrapf(err, "onchain: %s.%s", addr, method)
	}
	return tx.Hash(), nil
}

func (d *ethDriver) NextID(ctx context.Context, contract Contract) (*big.Int, error) {
	bound, _, err := d.bound(contract)
	if err != nil {
		return nil, err
	}
	var out []any
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, "nextId"); err != nil {
		return nil, rpgerr.Wrapf(err, "onchain: nextId(%s)", contract)
	}
	return out[0].(*big.Int), nil
}

// RebuildCache scans historical Transfer-shaped events in RescanWindow-sized
// block batches and rebuilds the in-memory projection. Used when a
// contract's own balance view is unreliable (congested RPC, stale indexer).
func (d *ethDriver) RebuildCache(ctx context.Context, contract Contract) error {
	_, addr, err := d.bound(contract)
	if err != nil {
		return err
	}

	latest, err := d.client.BlockNumber(ctx)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeExternalOutage, "onchain: rebuildCache: block number")
	}

	d.cache.mu.Lock()
	defer d.cache.mu.Unlock()

	var from uint64
	for from = 0; from <= latest; from += d.window + 1 {
		to := from + d.window
		if to > latest {
			to = latest
		}
		logs, err := d.client.FilterLogs(ctx, filterQuery(addr, from, to))
		if err != nil {
			d.log.Warn().Err(err).Uint64("from", from).Uint64("to", to).Str("contract", string(contract)).Msg("onchain: rebuildCache window failed, skipping")
			continue
		}
		for _, lg := range logs {
			d.applyProjectionLog(contract, lg)
		}
	}
	return nil
}

// AuctionListings returns a snapshot of the auction house projection, as
// rebuilt by the most recent RebuildCache(ctx, ContractAuctionHouse) call.
// Safe to call before any rebuild has run; it simply returns an empty slice.
func (d *ethDriver) AuctionListings(ctx context.Context) ([]AuctionListing, error) {
	d.cache.mu.RLock()
	defer d.cache.mu.RUnlock()
	out := make([]AuctionListing, 0, len(d.cache.listings))
	for _, l := range d.cache.listings {
		out = append(out, l)
	}
	return out, nil
}

func filterQuery(addr common.Address, from, to uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{addr},
	}
}

// applyProjectionLog folds one raw log into the projection. The exact topic
// decoding is contract-specific; this narrows to the shapes the shard cares
// about (Transfer for gold/items, Listed/Sold/Cancelled for the auction
// house) and ignores logs it doesn't recognize rather than failing the
// whole rescan.
func (d *ethDriver) applyProjectionLog(contract Contract, lg types.Log) {
	if len(lg.Topics) == 0 {
		return
	}
	p := d.cache
	switch contract {
	case ContractGold, ContractItem:
		// Balances are not accumulated here: Driver.GoldBalance /
		// ItemBalance call balanceOf live on every read; the projection here only needs to know an address
		// was touched so a caller can decide whether to trust its cached
		// value or force a fresh on-chain read.
		if len(lg.Topics) >= 3 {
			addr := common.BytesToAddress(lg.Topics[2].Bytes())
			if p.goldBal[addr] == nil {
				p.goldBal[addr] = big.NewInt(0)
			}
		}
	case ContractAuctionHouse:
		d.applyAuctionLog(lg)
	}
}

// applyAuctionLog decodes one auction house log against auctABI and folds
// it into the listings projection. Unlike gold/item balances, this
// projection is the cache's entire purpose -- internal/auctionhouse never
// falls back to a contract view call for listing state -- so unindexed
// topics fall through silently rather than dropping the whole log (a
// malformed or unrelated log from the same contract address should not
// poison the rescan).
func (d *ethDriver) applyAuctionLog(lg types.Log) {
	p := d.cache
	event, err := d.auctABI.EventByID(lg.Topics[0])
	if err != nil {
		return
	}
	switch event.Name {
	case "Listed":
		if len(lg.Topics) < 3 {
			return
		}
		listingID := new(big.Int).SetBytes(lg.Topics[1].Bytes()).String()
		seller := common.BytesToAddress(lg.Topics[2].Bytes())
		vals, err := event.Inputs.NonIndexed().Unpack(lg.Data)
		if err != nil || len(vals) < 3 {
			return
		}
		p.listings[listingID] = AuctionListing{
			ListingID:   listingID,
			Seller:      seller,
			TokenID:     vals[0].(*big.Int),
			Quantity:    vals[1].(*big.Int),
			PriceCopper: vals[2].(*big.Int),
			Status:      "active",
		}
	case "Sold":
		if len(lg.Topics) < 2 {
			return
		}
		listingID := new(big.Int).SetBytes(lg.Topics[1].Bytes()).String()
		if l, ok := p.listings[listingID]; ok {
			l.Status = "sold"
			p.listings[listingID] = l
		}
	case "Cancelled":
		if len(lg.Topics) < 2 {
			return
		}
		listingID := new(big.Int).SetBytes(lg.Topics[1].Bytes()).String()
		if l, ok := p.listings[listingID]; ok {
			l.Status = "cancelled"
			p.listings[listingID] = l
		}
	}
}

