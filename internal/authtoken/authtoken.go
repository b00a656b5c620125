// Package authtoken issues and verifies the bearer token httpapi hands out
// after a successful /auth/verify wallet-signature check
// (onchain.RecoverSigner). The token is a standard JWT HS256 claim set
// scoped to one wallet address; it carries no chain state of its own and is
// never itself consulted on-chain.
package authtoken

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// TTL is how long an issued token remains valid.
const TTL = 24 * time.Hour

// Issuer signs and verifies wallet-session tokens with a single shared
// secret. Rotating the secret invalidates every outstanding token; the
// shard has no revocation list beyond that.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

type claims struct {
	Wallet string `json:"wallet"`
	jwt.RegisteredClaims
}

// Issue mints a bearer token for wallet, valid for TTL from now.
func (iss *Issuer) Issue(wallet string, now time.Time) (string, error) {
	c := claims{
		Wallet: wallet,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(iss.secret)
	if err != nil {
		return "", rpgerr.Wrap(err, "authtoken: sign")
	}
	return signed, nil
}

// Verify parses and validates tokenStr, returning the wallet it was issued
// for. Fails on a bad signature, an expired token, or wrong signing method.
func (iss *Issuer) Verify(tokenStr string) (string, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, rpgerr.Newf(rpgerr.CodeInvalidArgument, "authtoken: unexpected signing method %v", t.Header["alg"])
		}
		return iss.secret, nil
	})
	if err != nil {
		return "", rpgerr.Wrap(err, "authtoken: invalid token")
	}
	if !tok.Valid {
		return "", rpgerr.New(rpgerr.CodeInvalidArgument, "authtoken: invalid token")
	}
	return c.Wallet, nil
}
