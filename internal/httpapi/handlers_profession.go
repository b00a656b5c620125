package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
)

type gatherRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	NodeID   string `json:"nodeId"`
	RecipeID string `json:"recipeId"`
}

// handleGather backs mining/mine, herbalism/gather, and skinning/skin: all
// three are the same gather-from-node-into-inventory flow, distinguished only
// by which profession's recipe catalog the node/recipe pair resolves against.
func (s *Server) handleGather(c *gin.Context) {
	var req gatherRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Gather(c.Request.Context(), authFrom(c), action.GatherRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, NodeID: req.NodeID, RecipeID: req.RecipeID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type craftRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	RecipeID string `json:"recipeId"`
}

// handleCraft backs cooking/cook, alchemy/brew, and crafting/craft: all three
// burn the recipe's materials and mint the output token, distinguished only
// by which station type requireNearStation checks for.
func (s *Server) handleCraft(c *gin.Context) {
	var req craftRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Craft(c.Request.Context(), authFrom(c), action.CraftRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, RecipeID: req.RecipeID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type learnProfessionRequest struct {
	ZoneID     string `json:"zoneId"`
	EntityID   string `json:"entityId"`
	Profession string `json:"profession"`
}

// handleLearnProfession implements POST /professions/learn: pays a flat
// trainer fee to add a profession to the entity's learned list.
func (s *Server) handleLearnProfession(c *gin.Context) {
	var req learnProfessionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.LearnProfession(c.Request.Context(), authFrom(c), action.LearnProfessionRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, Profession: req.Profession,
	}); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
