package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/agent"
)

type agentDeployRequest struct {
	Name     string `json:"name"`
	ZoneID   string `json:"zoneId"`
	RaceID   string `json:"raceId"`
	ClassID  string `json:"classId"`
	Gender   string `json:"gender"`
	Focus    string `json:"focus"`
	Strategy string `json:"strategy"`
}

// handleAgentDeploy implements POST /agent/deploy: spins up an autonomous
// custodial-wallet agent character for the calling wallet. Only one
// running agent is kept per owner wallet.
func (s *Server) handleAgentDeploy(c *gin.Context) {
	var req agentDeployRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.agents.Deploy(c.Request.Context(), agent.DeployRequest{
		OwnerWallet: authFrom(c).Wallet,
		Name:        req.Name,
		ZoneID:      req.ZoneID,
		RaceID:      req.RaceID,
		ClassID:     req.ClassID,
		Gender:      req.Gender,
		Focus:       req.Focus,
		Strategy:    req.Strategy,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAgentStop(c *gin.Context) {
	if err := s.agents.Stop(authFrom(c).Wallet); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAgentStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": s.agents.Status(authFrom(c).Wallet)})
}

type agentChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleAgentChat(c *gin.Context) {
	var req agentChatRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.agents.Chat(c.Request.Context(), authFrom(c).Wallet, req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
