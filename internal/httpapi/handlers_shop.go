package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
)

type shopBuyRequest struct {
	ZoneID     string `json:"zoneId"`
	EntityID   string `json:"entityId"`
	MerchantID int    `json:"merchantId"`
	TokenID    int    `json:"tokenId"`
	Quantity   int64  `json:"quantity"`
}

func (s *Server) handleShopBuy(c *gin.Context) {
	var req shopBuyRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Buy(c.Request.Context(), authFrom(c), action.BuyRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, MerchantID: req.MerchantID, TokenID: req.TokenID, Quantity: req.Quantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type shopSellRequest struct {
	ZoneID     string `json:"zoneId"`
	EntityID   string `json:"entityId"`
	MerchantID int    `json:"merchantId"`
	TokenID    int    `json:"tokenId"`
	Quantity   int64  `json:"quantity"`
}

func (s *Server) handleShopSell(c *gin.Context) {
	var req shopSellRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Sell(c.Request.Context(), authFrom(c), action.SellRequest{
		ZoneID: req.ZoneID, EntityID: req.EntityID, MerchantID: req.MerchantID, TokenID: req.TokenID, Quantity: req.Quantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
