package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type questAcceptRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	QuestID  string `json:"questId"`
}

func (s *Server) handleQuestAccept(c *gin.Context) {
	var req questAcceptRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.AcceptQuest(c.Request.Context(), authFrom(c), req.ZoneID, req.EntityID, req.QuestID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type questTurnInRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	QuestID  string `json:"questId"`
}

func (s *Server) handleQuestTurnIn(c *gin.Context) {
	var req questTurnInRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.TurnInQuest(c.Request.Context(), authFrom(c), req.ZoneID, req.EntityID, req.QuestID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
