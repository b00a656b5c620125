package action

import (
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// AuthContext is the identity an action runs as, established upstream by
// httpapi from a bearer token: wallet identity already verified, not yet
// checked against the request body's wallet or the target entity's owner.
type AuthContext struct {
	Wallet string
}

// requireWalletMatch rejects a token-wallet mismatch: the caller's
// authenticated wallet must equal the wallet the request claims to act
// as.
func requireWalletMatch(auth AuthContext, requestWallet string) error {
	if requestWallet != "" && auth.Wallet != requestWallet {
		return rpgerr.Newf(rpgerr.CodeNotAllowed, "authenticated wallet does not match request wallet")
	}
	return nil
}

// requireOwnership enforces entity ownership: the authenticated wallet
// must equal the target entity's walletAddress.
func requireOwnership(auth AuthContext, e *zone.Entity) error {
	if e.WalletAddress != auth.Wallet {
		return rpgerr.Newf(rpgerr.CodeNotAllowed, "wallet does not own entity %q", e.ID)
	}
	return nil
}

// getOwnedEntity looks up entityID in z and verifies auth owns it.
func getOwnedEntity(auth AuthContext, z *zone.Zone, entityID string) (*zone.Entity, error) {
	e, ok := z.Get(entityID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "entity %q not found", entityID)
	}
	if err := requireOwnership(auth, e); err != nil {
		return nil, err
	}
	return e, nil
}
