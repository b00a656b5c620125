package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type partyFormRequest struct {
	LeaderID   string   `json:"leaderId"`
	InviteeIDs []string `json:"inviteeIds"`
}

// handlePartyForm implements POST /party/form: the leader's entity forms a
// party from a starting roster of invitees.
func (s *Server) handlePartyForm(c *gin.Context) {
	var req partyFormRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.party.Form(req.LeaderID, req.InviteeIDs...); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": s.party.PartyMembers(req.LeaderID)})
}

type partyJoinRequest struct {
	LeaderID string `json:"leaderId"`
	EntityID string `json:"entityId"`
}

func (s *Server) handlePartyJoin(c *gin.Context) {
	var req partyJoinRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.party.Join(req.LeaderID, req.EntityID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": s.party.PartyMembers(req.LeaderID)})
}

type partyLeaveRequest struct {
	EntityID string `json:"entityId"`
}

func (s *Server) handlePartyLeave(c *gin.Context) {
	var req partyLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	s.party.Leave(req.EntityID)
	c.Status(http.StatusNoContent)
}
