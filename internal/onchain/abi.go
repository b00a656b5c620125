package onchain

import (
	"crypto/ecdsa"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Minimal ABI fragments for the five contracts the shard talks to. These
// name only the methods the Driver calls; the real contracts (out of scope
// for this repo) may expose a wider surface.
const erc20LikeABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const erc1155LikeABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"nextId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

const erc721LikeABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"nextId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

const reputationABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

// auctionHouseABI names only the write methods the driver ever calls
// directly (none at present: the shard never lists or buys on a player's
// behalf) plus the three lifecycle events RebuildCache decodes to rebuild
// internal/auctionhouse's cache: Listed, Sold, Cancelled.
const auctionHouseABI = `[
  {"type":"event","name":"Listed","inputs":[{"name":"listingId","type":"uint256","indexed":true},{"name":"seller","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false},{"name":"quantity","type":"uint256","indexed":false},{"name":"priceCopper","type":"uint256","indexed":false}]},
  {"type":"event","name":"Sold","inputs":[{"name":"listingId","type":"uint256","indexed":true},{"name":"buyer","type":"address","indexed":true}]},
  {"type":"event","name":"Cancelled","inputs":[{"name":"listingId","type":"uint256","indexed":true}]}
]`

func parsePrivateKeyHex(hexKey string) (*ecdsa.PrivateKey, error) {
	return gethcrypto.HexToECDSA(trim0x(hexKey))
}

func trim0x(s string) string {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
