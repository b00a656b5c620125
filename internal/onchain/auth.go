package onchain

import (
	"fmt"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// ChallengeMessage builds the exact text a wallet is asked to sign for
// GET /auth/challenge: wallet + timestamp, human-readable so a wallet's
// signing UI can render it.
func ChallengeMessage(wallet string, timestampUnix int64) string {
	return fmt.Sprintf("wog-shard auth challenge for %s at %d", wallet, timestampUnix)
}

// keccak256 hashes msg the way an EVM personal_sign flow does: the legacy
// Keccak-256 permutation, not NIST SHA3-256.
func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// ethSignedMessageHash reproduces the "\x19Ethereum Signed Message:\n" prefix
// convention wallets apply before signing, so recovery matches what the
// client actually produced.
func ethSignedMessageHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return keccak256([]byte(prefixed))
}

// RecoverSigner recovers the address that produced signature over message,
// verifying it equals wallet. signature is the raw 65-byte r||s||v
// signature (callers hex-decode it first) the client's wallet produced over ChallengeMessage's text.
func RecoverSigner(message string, signature []byte, wantWallet common.Address) error {
	if len(signature) != 65 {
		return rpgerr.Newf(rpgerr.CodeInvalidArgument, "onchain: signature must be 65 bytes, got %d", len(signature))
	}
	sig := make([]byte, 65)
	copy(sig, signature)
	// go-ethereum's Ecrecover expects v in {0,1}; wallets commonly produce
	// {27,28}.
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	hash := ethSignedMessageHash(message)
	pub, err := gethcrypto.SigToPub(hash, sig)
	if err != nil {
		return rpgerr.Wrap(err, "onchain: recover signer")
	}
	recovered := gethcrypto.PubkeyToAddress(*pub)
	if recovered != wantWallet {
		return rpgerr.Newf(rpgerr.CodeInvalidArgument, "onchain: signature recovered %s, wanted %s", recovered, wantWallet)
	}
	return nil
}
