package merchant

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Buy transfers qty of tokenID from merchantID's wallet to buyer, returning
// the total copper price charged (at the merchant's current sell price).
// The caller (internal/action) is responsible for reserving that copper
// against the buyer's available gold via goldledger before calling Buy.
func (m *Manager) Buy(ctx context.Context, merchantID string, tokenID int, qty int64, buyer common.Address) (int64, error) {
	merch, ok := m.Get(merchantID)
	if !ok {
		return 0, rpgerr.Newf(rpgerr.CodeNotFound, "merchant %q not found", merchantID)
	}
	quote, ok := merch.QuoteFor(tokenID)
	if !ok || quote.Stock < qty {
		return 0, rpgerr.Newf(rpgerr.CodeInvalidState, "merchant %q cannot sell %d of token %d", merchantID, qty, tokenID)
	}

	total := quote.SellPrice * qty
	if _, err := m.chain.TransferItem(ctx, merch.WalletAddress, buyer, big.NewInt(int64(tokenID)), big.NewInt(qty)); err != nil {
		return 0, rpgerr.Newf(rpgerr.CodeInternal, "merchant transfer failed: %v", err)
	}
	merch.recordSale(tokenID, qty)
	return total, nil
}

// Sell transfers qty of tokenID from seller to merchantID's wallet and
// mints the merchant's buy price in fresh gold to seller, mirroring how
// combat loot drops mint gold directly rather than debiting another
// wallet (the chain driver exposes no fungible gold transfer/burn, only
// MintGold).
func (m *Manager) Sell(ctx context.Context, merchantID string, tokenID int, qty int64, seller common.Address) (int64, error) {
	merch, ok := m.Get(merchantID)
	if !ok {
		return 0, rpgerr.Newf(rpgerr.CodeNotFound, "merchant %q not found", merchantID)
	}
	quote, ok := merch.QuoteFor(tokenID)
	if !ok {
		return 0, rpgerr.Newf(rpgerr.CodeInvalidState, "merchant %q does not buy token %d", merchantID, tokenID)
	}

	total := quote.BuyPrice * qty
	if _, err := m.chain.TransferItem(ctx, seller, merch.WalletAddress, big.NewInt(int64(tokenID)), big.NewInt(qty)); err != nil {
		return 0, rpgerr.Newf(rpgerr.CodeInternal, "merchant transfer failed: %v", err)
	}
	if total > 0 {
		if _, err := m.chain.MintGold(ctx, seller, big.NewInt(total)); err != nil {
			return 0, rpgerr.Newf(rpgerr.CodeInternal, "merchant gold payout failed: %v", err)
		}
	}
	merch.recordPurchase(tokenID, qty)
	return total, nil
}
