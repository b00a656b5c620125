package merchant

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
)

type fakeDriver struct {
	transferErr error
	mintGoldErr error
}

var _ onchain.Driver = (*fakeDriver)(nil)

func (f *fakeDriver) GoldBalance(context.Context, common.Address) (*big.Int, error) { return big.NewInt(0), nil }
func (f *fakeDriver) ItemBalance(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(0), nil
}
func (f *fakeDriver) MintGold(context.Context, common.Address, *big.Int) (common.Hash, error) {
	return common.Hash{}, f.mintGoldErr
}
func (f *fakeDriver) MintItem(context.Context, common.Address, *big.Int, *big.Int) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeDriver) BurnItem(context.Context, common.Address, *big.Int, *big.Int) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeDriver) TransferItem(context.Context, common.Address, common.Address, *big.Int, *big.Int) (common.Hash, error) {
	return common.Hash{}, f.transferErr
}
func (f *fakeDriver) NextID(context.Context, onchain.Contract) (*big.Int, error) { return big.NewInt(1), nil }
func (f *fakeDriver) RebuildCache(context.Context, onchain.Contract) error       { return nil }
func (f *fakeDriver) AuctionListings(context.Context) ([]onchain.AuctionListing, error) {
	return nil, nil
}

func newTestMerchant() *Merchant {
	return NewMerchant("merchant-1", "zone-1", common.HexToAddress("0x1"), []Listing{
		{TokenID: 101, TargetStock: 10, BasePrice: 20},
	})
}

func TestQuoteForUnknownToken(t *testing.T) {
	merch := newTestMerchant()
	if _, ok := merch.QuoteFor(999); ok {
		t.Fatal("expected unknown token to have no quote")
	}
}

func TestQuoteForKnownTokenStartsAtBasePrice(t *testing.T) {
	merch := newTestMerchant()
	q, ok := merch.QuoteFor(101)
	if !ok {
		t.Fatal("expected a quote")
	}
	if q.SellPrice != 20 {
		t.Fatalf("expected initial sell price 20, got %d", q.SellPrice)
	}
}

func TestManagerBuyReducesStockAndTransfers(t *testing.T) {
	driver := &fakeDriver{}
	m := NewManager(driver, nil, zerolog.Nop())
	merch := newTestMerchant()
	merch.listings[101].Stock = 10
	m.Register(merch)

	total, err := m.Buy(context.Background(), "merchant-1", 101, 2, common.HexToAddress("0x2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 40 {
		t.Fatalf("expected total 40 (2 * 20), got %d", total)
	}
	q, _ := merch.QuoteFor(101)
	if q.Stock != 8 {
		t.Fatalf("expected stock 8 after buying 2, got %d", q.Stock)
	}
}

func TestManagerSellMintsGoldToSeller(t *testing.T) {
	driver := &fakeDriver{}
	m := NewManager(driver, nil, zerolog.Nop())
	merch := newTestMerchant()
	merch.listings[101].Stock = 5
	m.Register(merch)

	total, err := m.Sell(context.Background(), "merchant-1", 101, 1, common.HexToAddress("0x2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 10 { // buyPrice(20, 20) = floor(20*0.5) = 10
		t.Fatalf("expected total 10, got %d", total)
	}
}

func TestManagerBuyInsufficientStockFails(t *testing.T) {
	driver := &fakeDriver{}
	m := NewManager(driver, nil, zerolog.Nop())
	merch := newTestMerchant()
	merch.listings[101].Stock = 1
	m.Register(merch)

	if _, err := m.Buy(context.Background(), "merchant-1", 101, 5, common.HexToAddress("0x2")); err == nil {
		t.Fatal("expected error buying more than available stock")
	}
}
