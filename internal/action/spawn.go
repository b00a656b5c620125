package action

import (
	"context"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

type SpawnRequest struct {
	ZoneID string
	Name   string
	RaceID string
	ClassID string
	Gender  string
	Level   int
}

type SpawnResult struct {
	Entity   *zone.Entity
	Restored bool
}

// Spawn implements spawn(zoneId, name, race, class, level?): restores a
// saved character for (wallet) if one exists, else initializes
// a fresh one from the race/class stat table at the requested level
// (default 1); places it in the requested
// zone, logs a diary entry, and initializes reputation.
func (d *Dispatcher) Spawn(ctx context.Context, auth AuthContext, req SpawnRequest) (*SpawnResult, error) {
	if req.ZoneID == "" || req.Name == "" {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidArgument, "zoneId and name are required")
	}
	level := req.Level
	if level < 1 {
		level = 1
	}

	var e *zone.Entity
	restored := false

	if saved, ok := d.store.LoadCharacter(ctx, auth.Wallet); ok {
		e = d.restoreEntity(auth.Wallet, saved)
		restored = true
	} else {
		e = zone.NewPlayerFromTemplate(auth.Wallet, req.Name, req.RaceID, req.ClassID, req.Gender, level, baseStatsFor(req.RaceID, req.ClassID, level))
		e.WalletAddress = auth.Wallet
		zone.RecalculateVitals(e)
		e.HP = e.MaxHP
		e.Essence = e.MaxEssence
	}

	z := d.runtime.GetOrCreateZone(req.ZoneID)
	if err := z.Place(e, e.X, e.Y); err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "spawn placement failed: %v", err)
	}

	d.store.AppendDiary(auth.Wallet, store.DiaryEntry{
		Timestamp: time.Now().Unix(),
		ZoneID:    req.ZoneID,
		X:         e.X,
		Y:         e.Y,
		Action:    "spawn",
		Headline:  "Entered the world",
	})

	if d.reputation != nil {
		d.reputation.Initialize(auth.Wallet)
	}

	return &SpawnResult{Entity: e, Restored: restored}, nil
}

func (d *Dispatcher) restoreEntity(wallet string, saved *store.CharacterHash) *zone.Entity {
	e := zone.NewPlayerFromTemplate(wallet, saved.Name, saved.RaceID, saved.ClassID, saved.Gender, saved.Level, baseStatsFor(saved.RaceID, saved.ClassID, saved.Level))
	e.WalletAddress = wallet
	e.X, e.Y = saved.X, saved.Y
	e.XP = int(saved.XP)
	e.Kills = saved.Kills
	e.CompletedQuests = append([]string{}, saved.CompletedQuests...)
	e.LearnedTechniques = append([]string{}, saved.LearnedTechniques...)
	e.Professions = append([]string{}, saved.Professions...)
	zone.RecalculateVitals(e)
	e.HP = e.MaxHP
	e.Essence = e.MaxEssence
	return e
}

// Logout implements logout: persist save, remove entity.
func (d *Dispatcher) Logout(ctx context.Context, auth AuthContext, zoneID, entityID string) error {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return err
	}

	d.store.SaveCharacter(auth.Wallet, store.CharacterHash{
		Name: e.Name, Level: e.Level, XP: int64(e.XP), RaceID: e.RaceID, ClassID: e.ClassID,
		Gender: e.Gender, Zone: zoneID, X: e.X, Y: e.Y, Kills: e.Kills,
		CompletedQuests: e.CompletedQuests, LearnedTechniques: e.LearnedTechniques, Professions: e.Professions,
	})
	return z.Remove(entityID)
}
