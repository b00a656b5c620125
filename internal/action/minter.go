package action

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
)

// chainMinter adapts onchain.Driver's common.Address/*big.Int signatures to
// the narrower string/int surface the action handlers and combat.LootMinter
// work with. This is the same kind of dependency-inversion seam combat uses
// for its own LootMinter/SignatureGenerator interfaces, just pointed at the
// real chain driver instead of a test double.
type chainMinter struct {
	chain onchain.Driver
}

var _ combat.LootMinter = (*chainMinter)(nil)

func newChainMinter(chain onchain.Driver) *chainMinter {
	return &chainMinter{chain: chain}
}

func (c *chainMinter) MintItem(ctx context.Context, wallet string, tokenID, quantity int) error {
	_, err := c.chain.MintItem(ctx, common.HexToAddress(wallet), big.NewInt(int64(tokenID)), big.NewInt(int64(quantity)))
	return err
}

func (c *chainMinter) MintGold(ctx context.Context, wallet string, copper int64) error {
	_, err := c.chain.MintGold(ctx, common.HexToAddress(wallet), big.NewInt(copper))
	return err
}

func mintItem(ctx context.Context, chain onchain.Driver, wallet string, tokenID, quantity int) error {
	_, err := chain.MintItem(ctx, common.HexToAddress(wallet), big.NewInt(int64(tokenID)), big.NewInt(int64(quantity)))
	return err
}

func mintGold(ctx context.Context, chain onchain.Driver, wallet string, copper int64) error {
	_, err := chain.MintGold(ctx, common.HexToAddress(wallet), big.NewInt(copper))
	return err
}

func burnItem(ctx context.Context, chain onchain.Driver, wallet string, tokenID, quantity int) error {
	_, err := chain.BurnItem(ctx, common.HexToAddress(wallet), big.NewInt(int64(tokenID)), big.NewInt(int64(quantity)))
	return err
}

func transferItem(ctx context.Context, chain onchain.Driver, from, to string, tokenID, quantity int) error {
	_, err := chain.TransferItem(ctx, common.HexToAddress(from), common.HexToAddress(to), big.NewInt(int64(tokenID)), big.NewInt(int64(quantity)))
	return err
}

func itemBalance(ctx context.Context, chain onchain.Driver, wallet string, tokenID int) (int64, error) {
	bal, err := chain.ItemBalance(ctx, common.HexToAddress(wallet), big.NewInt(int64(tokenID)))
	if err != nil {
		return 0, err
	}
	return bal.Int64(), nil
}

func goldBalance(ctx context.Context, chain onchain.Driver, wallet string) (int64, error) {
	bal, err := chain.GoldBalance(ctx, common.HexToAddress(wallet))
	if err != nil {
		return 0, err
	}
	return bal.Int64(), nil
}
