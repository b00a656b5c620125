package httpapi

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

type spawnRequest struct {
	ZoneID  string `json:"zoneId"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	RaceID  string `json:"raceId"`
	ClassID string `json:"classId"`
	Gender  string `json:"gender"`
	Level   int    `json:"level"`
}

type spawnResponse struct {
	Spawned  *action.SpawnResult `json:"spawned"`
	Restored bool                `json:"restored"`
	Zone     string              `json:"zone"`
}

// handleSpawn implements POST /spawn.
func (s *Server) handleSpawn(c *gin.Context) {
	var req spawnRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.dispatcher.Spawn(c.Request.Context(), authFrom(c), action.SpawnRequest{
		ZoneID: req.ZoneID, Name: req.Name, RaceID: req.RaceID, ClassID: req.ClassID, Gender: req.Gender, Level: req.Level,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, spawnResponse{Spawned: result, Restored: result.Restored, Zone: req.ZoneID})
}

type logoutRequest struct {
	ZoneID   string `json:"zoneId"`
	EntityID string `json:"entityId"`
}

func (s *Server) handleLogout(c *gin.Context) {
	var req logoutRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.dispatcher.Logout(c.Request.Context(), authFrom(c), req.ZoneID, req.EntityID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleCharacter implements GET /character/:wallet: a wallet may only
// read its own persisted character hash.
func (s *Server) handleCharacter(c *gin.Context) {
	wallet := c.Param("wallet")
	auth := authFrom(c)
	if wallet != auth.Wallet {
		fail(c, rpgerr.New(rpgerr.CodeNotAllowed, "wallet mismatch"))
		return
	}
	ch, ok := s.store.LoadCharacter(c.Request.Context(), wallet)
	if !ok {
		fail(c, rpgerr.Newf(rpgerr.CodeNotFound, "no character for wallet %q", wallet))
		return
	}
	c.JSON(http.StatusOK, ch)
}

// handleDiary implements GET /diary/:wallet.
func (s *Server) handleDiary(c *gin.Context) {
	wallet := c.Param("wallet")
	auth := authFrom(c)
	if wallet != auth.Wallet {
		fail(c, rpgerr.New(rpgerr.CodeNotAllowed, "wallet mismatch"))
		return
	}
	c.JSON(http.StatusOK, s.store.LoadDiary(c.Request.Context(), wallet))
}

// handleState implements GET /state?zoneId=...: every entity currently in
// the zone, for a client to render.
func (s *Server) handleState(c *gin.Context) {
	zoneID := c.Query("zoneId")
	if zoneID == "" {
		fail(c, rpgerr.New(rpgerr.CodeInvalidArgument, "zoneId query param required"))
		return
	}
	z := s.runtime.GetOrCreateZone(zoneID)
	c.JSON(http.StatusOK, gin.H{"zoneId": zoneID, "tick": z.Tick(), "entities": z.All()})
}

// handleLeaderboard implements GET /leaderboard: top N characters by
// level then kills, recomputed on demand over every persisted wallet
// (there is no secondary index -- internal/store.AllWallets already
// documents this tradeoff for the same reason).
func (s *Server) handleLeaderboard(c *gin.Context) {
	const topN = 50
	wallets := s.store.AllWallets()
	type row struct {
		Wallet string `json:"wallet"`
		Name   string `json:"name"`
		Level  int    `json:"level"`
		Kills  int    `json:"kills"`
	}
	rows := make([]row, 0, len(wallets))
	for _, w := range wallets {
		ch, ok := s.store.LoadCharacter(c.Request.Context(), w)
		if !ok {
			continue
		}
		rows = append(rows, row{Wallet: w, Name: ch.Name, Level: ch.Level, Kills: ch.Kills})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Level != rows[j].Level {
			return rows[i].Level > rows[j].Level
		}
		return rows[i].Kills > rows[j].Kills
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}
	c.JSON(http.StatusOK, rows)
}
