package agent

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// encryptKey seals a raw ECDSA private key with AES-GCM under encKey (the
// server-side secret from §6 config). No example repo or ecosystem library
// in the pack owns "encrypt an arbitrary at-rest secret blob" as a domain
// concern -- this is the same class of ambient justification as the
// merchant scheduler's stdlib time.Ticker.
func encryptKey(encKey, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "custodial key cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "custodial key gcm: %v", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "custodial key nonce: %v", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptKey(encKey, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "custodial key cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "custodial key gcm: %v", err)
	}
	if len(blob) < gcm.NonceSize() {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "custodial key blob too short")
	}
	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// newCustodialWallet generates a fresh ECDSA keypair and returns its hex
// address and the AES-GCM-sealed private key, ready to persist via
// store.Store.SaveKeyBlob.
func newCustodialWallet(encKey []byte) (address string, sealedKey []byte, err error) {
	key, err := gethcrypto.GenerateKey()
	if err != nil {
		return "", nil, rpgerr.Newf(rpgerr.CodeInternal, "generate custodial key: %v", err)
	}
	addr := gethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	sealed, err := encryptKey(encKey, gethcrypto.FromECDSA(key))
	if err != nil {
		return "", nil, err
	}
	return addr, sealed, nil
}
