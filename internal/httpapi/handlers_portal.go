package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type portalUseRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	PortalID string `json:"portalId"`
}

func (s *Server) handlePortalUse(c *gin.Context) {
	var req portalUseRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.UsePortal(c.Request.Context(), authFrom(c), req.ZoneID, req.EntityID, req.PortalID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type autoTransitionRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
}

// handleAutoTransition implements POST /transition/auto: crossing a zone
// boundary at the edge of the map, triggered by the client rather than a
// named portal entity.
func (s *Server) handleAutoTransition(c *gin.Context) {
	var req autoTransitionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.AutoTransition(c.Request.Context(), authFrom(c), req.ZoneID, req.EntityID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
