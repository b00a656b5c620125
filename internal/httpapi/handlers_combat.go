package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

type commandRequest struct {
	ZoneID   string  `json:"zoneId"`
	EntityID string  `json:"entityId"`
	Action   string  `json:"action"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	TargetID string  `json:"targetId"`
}

// handleCommand implements POST /command: a generic envelope dispatching
// on the action field to the matching Dispatcher method, the same
// move/attack/logout verbs the HTTP surface's canonical payload names.
func (s *Server) handleCommand(c *gin.Context) {
	var req commandRequest
	if !bindJSON(c, &req) {
		return
	}
	auth := authFrom(c)
	ctx := c.Request.Context()

	switch req.Action {
	case "move":
		if err := s.dispatcher.Move(ctx, auth, req.ZoneID, req.EntityID, req.X, req.Y); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	case "attack":
		result, err := s.dispatcher.Attack(ctx, auth, req.ZoneID, req.EntityID, req.TargetID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	case "logout":
		if err := s.dispatcher.Logout(ctx, auth, req.ZoneID, req.EntityID); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	default:
		fail(c, rpgerr.Newf(rpgerr.CodeInvalidArgument, "unknown command action %q", req.Action))
	}
}

type techniqueUseRequest struct {
	ZoneID         string `json:"zoneId"`
	CasterEntityID string `json:"casterEntityId"`
	TechniqueID    string `json:"techniqueId"`
	TargetEntityID string `json:"targetEntityId"`
}

type techniqueUseResponse struct {
	Success               bool     `json:"success"`
	Technique             string   `json:"technique"`
	CasterEssence         int      `json:"casterEssence"`
	CooldownExpiresAtTick uint64   `json:"cooldownExpiresAtTick"`
	Result                []string `json:"result"`
}

// handleTechniqueUse implements POST /techniques/use.
func (s *Server) handleTechniqueUse(c *gin.Context) {
	var req techniqueUseRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.UseTechnique(c.Request.Context(), authFrom(c), req.ZoneID, req.CasterEntityID, req.TechniqueID, req.TargetEntityID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, techniqueUseResponse{
		Success: true, Technique: req.TechniqueID, CasterEssence: result.CasterEssence,
		CooldownExpiresAtTick: result.CooldownExpiresAtTick, Result: result.TargetIDs,
	})
}
