package action

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

type BuyRequest struct {
	ZoneID     string
	EntityID   string
	MerchantID string
	TokenID    int
	Quantity   int64
}

type TradeResult struct {
	TotalCopper int64
}

// Buy implements the buy side of trade: reserves the quoted
// copper cost against the gold ledger before asking the merchant to move
// stock, then reconciles the reservation against what actually cleared.
func (d *Dispatcher) Buy(ctx context.Context, auth AuthContext, req BuyRequest) (*TradeResult, error) {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	buyer, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return nil, err
	}

	merch, ok := d.merchant.Get(req.MerchantID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "merchant %q not found", req.MerchantID)
	}
	quote, ok := merch.QuoteFor(req.TokenID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "merchant %q does not stock token %d", req.MerchantID, req.TokenID)
	}
	estimated := quote.SellPrice * req.Quantity

	onChain, err := goldBalance(ctx, d.chain, buyer.WalletAddress)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "gold balance check failed: %v", err)
	}
	if d.ledger.AvailableGold(buyer.WalletAddress, onChain) < estimated {
		return nil, rpgerr.Newf(rpgerr.CodeResourceExhausted, "insufficient gold")
	}
	d.ledger.RecordSpend(buyer.WalletAddress, estimated)

	total, err := d.merchant.Buy(ctx, req.MerchantID, req.TokenID, req.Quantity, common.HexToAddress(buyer.WalletAddress))
	if err != nil {
		d.ledger.RecordRefund(buyer.WalletAddress, estimated)
		return nil, err
	}
	if diff := estimated - total; diff > 0 {
		d.ledger.RecordRefund(buyer.WalletAddress, diff)
	}

	return &TradeResult{TotalCopper: total}, nil
}

type SellRequest struct {
	ZoneID     string
	EntityID   string
	MerchantID string
	TokenID    int
	Quantity   int64
}

// Sell implements the sell side of trade: the merchant mints
// copper straight to the seller's wallet, mirroring how combat's loot
// drops already mint gold rather than debiting another wallet.
func (d *Dispatcher) Sell(ctx context.Context, auth AuthContext, req SellRequest) (*TradeResult, error) {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	seller, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return nil, err
	}

	total, err := d.merchant.Sell(ctx, req.MerchantID, req.TokenID, req.Quantity, common.HexToAddress(seller.WalletAddress))
	if err != nil {
		return nil, err
	}
	return &TradeResult{TotalCopper: total}, nil
}
