package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
)

type equipRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	Slot     string `json:"slot"`
	TokenID  int    `json:"tokenId"`
}

func (s *Server) handleEquip(c *gin.Context) {
	var req equipRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.Equip(c.Request.Context(), authFrom(c), action.EquipRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, Slot: req.Slot, TokenID: req.TokenID,
	}); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type unequipRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	Slot     string `json:"slot"`
}

func (s *Server) handleUnequip(c *gin.Context) {
	var req unequipRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.Unequip(c.Request.Context(), authFrom(c), action.UnequipRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, Slot: req.Slot,
	}); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type repairRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
	Slot     string `json:"slot"`
}

func (s *Server) handleRepair(c *gin.Context) {
	var req repairRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Repair(c.Request.Context(), authFrom(c), action.RepairRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, Slot: req.Slot,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
