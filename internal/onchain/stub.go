package onchain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// StubDriver is a Driver that only updates a local projection, for testing
// and local development without a live ledger.
type StubDriver struct {
	mu       sync.Mutex
	gold     map[common.Address]*big.Int
	items    map[common.Address]map[string]*big.Int
	nextIDs  map[Contract]*big.Int
	listings map[string]AuctionListing
	txSeq    uint64
}

// NewStubDriver returns an empty stub projection.
func NewStubDriver() *StubDriver {
	return &StubDriver{
		gold:     map[common.Address]*big.Int{},
		items:    map[common.Address]map[string]*big.Int{},
		nextIDs:  map[Contract]*big.Int{},
		listings: map[string]AuctionListing{},
	}
}

var _ Driver = (*StubDriver)(nil)

func (s *StubDriver) fakeTx() common.Hash {
	s.txSeq++
	return common.BigToHash(new(big.Int).SetUint64(s.txSeq))
}

func (s *StubDriver) GoldBalance(_ context.Context, addr common.Address) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.gold[addr]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}

func (s *StubDriver) ItemBalance(_ context.Context, addr common.Address, tokenID *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.items[addr]; ok {
		if b, ok := m[tokenID.String()]; ok {
			return new(big.Int).Set(b), nil
		}
	}
	return big.NewInt(0), nil
}

func (s *StubDriver) MintGold(_ context.Context, addr common.Address, copper *big.Int) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.gold[addr]
	if !ok {
		cur = big.NewInt(0)
	}
	s.gold[addr] = new(big.Int).Add(cur, copper)
	return s.fakeTx(), nil
}

func (s *StubDriver) MintItem(_ context.Context, addr common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.items[addr]
	if !ok {
		m = map[string]*big.Int{}
		s.items[addr] = m
	}
	cur, ok := m[tokenID.String()]
	if !ok {
		cur = big.NewInt(0)
	}
	m[tokenID.String()] = new(big.Int).Add(cur, qty)
	return s.fakeTx(), nil
}

func (s *StubDriver) BurnItem(_ context.Context, addr common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.items[addr]
	if !ok {
		return common.Hash{}, rpgerr.Newf(rpgerr.CodeResourceExhausted, "onchain(stub): %s holds no token %s", addr, tokenID)
	}
	cur, ok := m[tokenID.String()]
	if !ok || cur.Cmp(qty) < 0 {
		return common.Hash{}, rpgerr.Newf(rpgerr.CodeResourceExhausted, "onchain(stub): %s insufficient balance of token %s", addr, tokenID)
	}
	m[tokenID.String()] = new(big.Int).Sub(cur, qty)
	return s.fakeTx(), nil
}

func (s *StubDriver) TransferItem(_ context.Context, from, to common.Address, tokenID, qty *big.Int) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.items[from]
	if !ok {
		return common.Hash{}, rpgerr.Newf(rpgerr.CodeResourceExhausted, "onchain(stub): %s holds no token %s", from, tokenID)
	}
	cur, ok := m[tokenID.String()]
	if !ok || cur.Cmp(qty) < 0 {
		return common.Hash{}, rpgerr.Newf(rpgerr.CodeResourceExhausted, "onchain(stub): %s insufficient balance of token %s", from, tokenID)
	}
	m[tokenID.String()] = new(big.Int).Sub(cur, qty)

	toM, ok := s.items[to]
	if !ok {
		toM = map[string]*big.Int{}
		s.items[to] = toM
	}
	toCur, ok := toM[tokenID.String()]
	if !ok {
		toCur = big.NewInt(0)
	}
	toM[tokenID.String()] = new(big.Int).Add(toCur, qty)
	return s.fakeTx(), nil
}

func (s *StubDriver) NextID(_ context.Context, contract Contract) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.nextIDs[contract]
	if !ok {
		cur = big.NewInt(0)
	}
	next := new(big.Int).Add(cur, big.NewInt(1))
	s.nextIDs[contract] = next
	return next, nil
}

// RebuildCache is a no-op on the stub: the stub's maps are already the
// ground truth, there is no external event log to rescan.
func (s *StubDriver) RebuildCache(_ context.Context, _ Contract) error {
	return nil
}

// AuctionListings returns the stub's listings, letting local dev and tests
// exercise internal/auctionhouse without a live chain. SeedListing below is
// the only writer; the stub has no notion of a real listing contract call.
func (s *StubDriver) AuctionListings(_ context.Context) ([]AuctionListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuctionListing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	return out, nil
}

// SeedListing installs a listing directly into the stub projection, for
// tests that need internal/auctionhouse to sync against known data without
// a live chain's event log.
func (s *StubDriver) SeedListing(l AuctionListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ListingID] = l
}
