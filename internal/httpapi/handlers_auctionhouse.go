package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleAuctionListActive implements GET /auctionhouse/listings: every
// active listing, served from the pgx-backed cache internal/auctionhouse
// keeps synced against the chain driver's event projection.
func (s *Server) handleAuctionListActive(c *gin.Context) {
	listings, err := s.auctionhouse.ListActive(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (s *Server) handleAuctionGetListing(c *gin.Context) {
	listing, err := s.auctionhouse.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// handleAuctionMyListings implements GET /auctionhouse/my: every listing
// (any status) the calling wallet has ever posted as a seller.
func (s *Server) handleAuctionMyListings(c *gin.Context) {
	listings, err := s.auctionhouse.MyListings(c.Request.Context(), authFrom(c).Wallet)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}
