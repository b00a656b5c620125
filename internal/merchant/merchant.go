// Package merchant runs the long-lived NPC economy loop: each merchant
// entity holds a custodial wallet and a stocked inventory, and a periodic
// scheduler keeps its on-chain balances, prices, and restocking in sync.
package merchant

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

const targetStockDefault = 10

// Listing is one token a merchant stocks, with its target stock level and
// base (undiscounted) price in copper.
type Listing struct {
	TokenID     int
	TargetStock int
	BasePrice   int64
}

// stockState is a listing's live, mutable state.
type stockState struct {
	Listing
	Stock        int64
	CurrentPrice int64
}

// Merchant is one NPC's custodial wallet and inventory model. Reads against
// Stock/CurrentPrice are served from this in-memory projection; syncInventory
// refreshes it from the chain driver.
type Merchant struct {
	EntityID      string
	ZoneID        string
	WalletAddress common.Address

	mu       sync.RWMutex
	listings map[int]*stockState
}

// NewMerchant seeds a merchant with its starting listings, target stock
// defaulting to targetStockDefault when a Listing doesn't set one.
func NewMerchant(entityID, zoneID string, wallet common.Address, listings []Listing) *Merchant {
	m := &Merchant{
		EntityID:      entityID,
		ZoneID:        zoneID,
		WalletAddress: wallet,
		listings:      make(map[int]*stockState, len(listings)),
	}
	for _, l := range listings {
		if l.TargetStock <= 0 {
			l.TargetStock = targetStockDefault
		}
		m.listings[l.TokenID] = &stockState{Listing: l, CurrentPrice: l.BasePrice}
	}
	return m
}

// Quote is a merchant's current sell/buy prices and stock for one token.
type Quote struct {
	TokenID   int
	Stock     int64
	SellPrice int64 // price the player pays to buy from the merchant
	BuyPrice  int64 // price the merchant pays to buy from the player
}

// QuoteFor returns the current quote for tokenID, or ok=false if the
// merchant doesn't stock it.
func (m *Merchant) QuoteFor(tokenID int) (Quote, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.listings[tokenID]
	if !ok {
		return Quote{}, false
	}
	return Quote{
		TokenID:   tokenID,
		Stock:     s.Stock,
		SellPrice: s.CurrentPrice,
		BuyPrice:  buyPrice(s.CurrentPrice, s.BasePrice),
	}, true
}

// Listings returns every token this merchant stocks, for catalog display.
func (m *Merchant) Listings() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.listings))
	for id := range m.listings {
		ids = append(ids, id)
	}
	return ids
}

// recordSale reduces stock by qty after a player buys, recomputing price.
func (m *Merchant) recordSale(tokenID int, qty int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.listings[tokenID]
	if !ok {
		return
	}
	s.Stock -= qty
	if s.Stock < 0 {
		s.Stock = 0
	}
	s.CurrentPrice = dynamicPrice(s.BasePrice, s.Stock, int64(s.TargetStock))
}

// recordPurchase increases stock by qty after the merchant buys from a
// player, recomputing price.
func (m *Merchant) recordPurchase(tokenID int, qty int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.listings[tokenID]
	if !ok {
		return
	}
	s.Stock += qty
	s.CurrentPrice = dynamicPrice(s.BasePrice, s.Stock, int64(s.TargetStock))
}
