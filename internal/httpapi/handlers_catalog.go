package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleItemsCatalog implements GET /items/catalog: the full static item
// table, unauthenticated since it carries no per-wallet state.
func (s *Server) handleItemsCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.AllItems())
}

func (s *Server) handleTechniquesCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.AllTechniques())
}

// handleGuildVaultUnavailable answers GET /guild/vault/:guildId: guild vaults
// are named in the HTTP surface but no contract address for them is
// configured (there is no GUILD_VAULT_CONTRACT_ADDRESS env var), so there is
// no cache to read from. 501 rather than a fabricated empty vault.
func (s *Server) handleGuildVaultUnavailable(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, errorBody{Error: "guild vault is not configured on this shard", Code: "not_implemented"})
}
