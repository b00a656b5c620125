package httpapi

import (
	"encoding/hex"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// challengeFreshness bounds how old a verify request's timestamp may be:
// verify validates the signature and timestamp freshness within this
// window.
const challengeFreshness = 5 * time.Minute

type challengeResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// handleAuthChallenge implements GET /auth/challenge?wallet=....
func (s *Server) handleAuthChallenge(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		fail(c, rpgerr.New(rpgerr.CodeInvalidArgument, "wallet query param required"))
		return
	}
	now := time.Now().Unix()
	c.JSON(http.StatusOK, challengeResponse{
		Message:   onchain.ChallengeMessage(wallet, now),
		Timestamp: now,
	})
}

type verifyRequest struct {
	Wallet    string `json:"wallet"`
	Signature string `json:"signature"` // hex-encoded, 0x-prefixed or not
	Timestamp int64  `json:"timestamp"`
}

type verifyResponse struct {
	Token string `json:"token"`
}

// handleAuthVerify implements POST /auth/verify.
func (s *Server) handleAuthVerify(c *gin.Context) {
	var req verifyRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Wallet == "" || req.Signature == "" {
		fail(c, rpgerr.New(rpgerr.CodeInvalidArgument, "wallet and signature required"))
		return
	}

	now := time.Now()
	age := now.Sub(time.Unix(req.Timestamp, 0))
	if age < 0 {
		age = -age
	}
	if age > challengeFreshness {
		fail(c, rpgerr.New(rpgerr.CodeInvalidArgument, "challenge timestamp expired"))
		return
	}

	sigHex := req.Signature
	if len(sigHex) >= 2 && sigHex[0:2] == "0x" {
		sigHex = sigHex[2:]
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		fail(c, rpgerr.Wrap(err, "signature must be hex-encoded"))
		return
	}

	message := onchain.ChallengeMessage(req.Wallet, req.Timestamp)
	if err := onchain.RecoverSigner(message, sig, common.HexToAddress(req.Wallet)); err != nil {
		fail(c, err)
		return
	}

	token, err := s.authIssuer.Issue(req.Wallet, now)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, verifyResponse{Token: token})
}
