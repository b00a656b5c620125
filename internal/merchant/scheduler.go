package merchant

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
)

const (
	inventorySyncInterval = 60 * time.Second
	priceUpdateInterval   = 30 * time.Second
	restockInterval       = 120 * time.Second
	announcementInterval  = 300 * time.Second
)

// Manager owns every live merchant and runs their four independent
// scheduler phases. One goroutine per merchant multiplexes its four
// tickers; phases never block on each other across merchants.
type Manager struct {
	chain onchain.Driver
	bus   events.EventBus
	log   zerolog.Logger

	mu        sync.RWMutex
	merchants map[string]*Merchant

	priceUpdated events.TypedTopic[PriceUpdatedEvent]
	restocked    events.TypedTopic[RestockedEvent]
	announcement events.TypedTopic[AnnouncementEvent]
}

func NewManager(chain onchain.Driver, bus events.EventBus, log zerolog.Logger) *Manager {
	m := &Manager{chain: chain, bus: bus, log: log, merchants: make(map[string]*Merchant)}
	if bus != nil {
		m.priceUpdated = PriceUpdatedTopic.On(bus)
		m.restocked = RestockedTopic.On(bus)
		m.announcement = AnnouncementTopic.On(bus)
	}
	return m
}

// Register adds a merchant to the scheduler. Safe to call while Run loops
// for other merchants are already active.
func (m *Manager) Register(merch *Merchant) {
	m.mu.Lock()
	m.merchants[merch.EntityID] = merch
	m.mu.Unlock()
}

func (m *Manager) Get(entityID string) (*Merchant, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	merch, ok := m.merchants[entityID]
	return merch, ok
}

// Run starts every registered merchant's scheduler loop and blocks until
// ctx is canceled. Each merchant's own phase errors are logged and
// swallowed so one bad merchant never stops its peers.
func (m *Manager) Run(ctx context.Context) {
	m.mu.RLock()
	merchants := make([]*Merchant, 0, len(m.merchants))
	for _, merch := range m.merchants {
		merchants = append(merchants, merch)
	}
	m.mu.RUnlock()

	var wg sync.WaitGroup
	for _, merch := range merchants {
		wg.Add(1)
		go func(merch *Merchant) {
			defer wg.Done()
			m.runMerchant(ctx, merch)
		}(merch)
	}
	wg.Wait()
}

func (m *Manager) runMerchant(ctx context.Context, merch *Merchant) {
	inventorySync := time.NewTicker(inventorySyncInterval)
	priceUpdate := time.NewTicker(priceUpdateInterval)
	restock := time.NewTicker(restockInterval)
	announce := time.NewTicker(announcementInterval)
	defer inventorySync.Stop()
	defer priceUpdate.Stop()
	defer restock.Stop()
	defer announce.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-inventorySync.C:
			m.syncInventory(ctx, merch)
		case <-priceUpdate.C:
			m.updatePrices(merch)
		case <-restock.C:
			m.restock(ctx, merch)
		case <-announce.C:
			m.announce(merch)
		}
	}
}

func (m *Manager) syncInventory(ctx context.Context, merch *Merchant) {
	for _, tokenID := range merch.Listings() {
		bal, err := m.chain.ItemBalance(ctx, merch.WalletAddress, big.NewInt(int64(tokenID)))
		if err != nil {
			m.log.Warn().Err(err).Str("merchant", merch.EntityID).Int("token_id", tokenID).Msg("merchant inventory sync failed")
			continue
		}
		merch.mu.Lock()
		if s, ok := merch.listings[tokenID]; ok {
			s.Stock = bal.Int64()
		}
		merch.mu.Unlock()
	}
}

func (m *Manager) updatePrices(merch *Merchant) {
	merch.mu.Lock()
	for tokenID, s := range merch.listings {
		s.CurrentPrice = dynamicPrice(s.BasePrice, s.Stock, int64(s.TargetStock))
		if m.priceUpdated != nil {
			_ = m.priceUpdated.Publish(context.Background(), PriceUpdatedEvent{
				ZoneID: merch.ZoneID, MerchantID: merch.EntityID, TokenID: tokenID,
				SellPrice: s.CurrentPrice, BuyPrice: buyPrice(s.CurrentPrice, s.BasePrice), At: time.Now(),
			})
		}
	}
	merch.mu.Unlock()
}

func (m *Manager) restock(ctx context.Context, merch *Merchant) {
	merch.mu.RLock()
	type need struct {
		tokenID int
		qty     int64
	}
	var needs []need
	for tokenID, s := range merch.listings {
		if qty := restockAmount(s.Stock, int64(s.TargetStock)); qty > 0 {
			needs = append(needs, need{tokenID, qty})
		}
	}
	merch.mu.RUnlock()

	for _, n := range needs {
		if _, err := m.chain.MintItem(ctx, merch.WalletAddress, big.NewInt(int64(n.tokenID)), big.NewInt(n.qty)); err != nil {
			m.log.Warn().Err(err).Str("merchant", merch.EntityID).Int("token_id", n.tokenID).Msg("merchant restock mint failed")
			continue
		}
		merch.recordPurchase(n.tokenID, n.qty)
		if m.restocked != nil {
			_ = m.restocked.Publish(context.Background(), RestockedEvent{
				ZoneID: merch.ZoneID, MerchantID: merch.EntityID, TokenID: n.tokenID, Quantity: n.qty, At: time.Now(),
			})
		}
	}
}

func (m *Manager) announce(merch *Merchant) {
	if m.announcement == nil {
		return
	}

	merch.mu.RLock()
	var bestDiscount float64
	bestToken := -1
	var outOfStock []int
	for tokenID, s := range merch.listings {
		if s.Stock <= 0 {
			outOfStock = append(outOfStock, tokenID)
			continue
		}
		discount := 1 - float64(s.CurrentPrice)/float64(s.BasePrice)
		if discount > bestDiscount {
			bestDiscount = discount
			bestToken = tokenID
		}
	}
	merch.mu.RUnlock()

	var msg string
	switch {
	case bestToken >= 0 && bestDiscount > 0:
		msg = fmt.Sprintf("best deal: token %d at %.0f%% off", bestToken, bestDiscount*100)
	case len(outOfStock) > 0:
		msg = fmt.Sprintf("out of stock: token %d", outOfStock[0])
	default:
		return
	}

	_ = m.announcement.Publish(context.Background(), AnnouncementEvent{
		ZoneID: merch.ZoneID, MerchantID: merch.EntityID, Message: msg, At: time.Now(),
	})
}
