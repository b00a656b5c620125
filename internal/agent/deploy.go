package agent

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
)

const starterGoldCopper = 5000

// DeployRequest is the input to Deploy.
type DeployRequest struct {
	OwnerWallet string
	Name        string
	ZoneID      string
	RaceID      string
	ClassID     string
	Gender      string
	Focus       string
	Strategy    string
}

// DeployResult summarizes a successful deploy.
type DeployResult struct {
	CustodialWallet string
	CharacterToken  int64
	EntityID        string
}

// Deploy implements the agent deploy flow: creates a custodial
// wallet, mints starter gold, reserves a character token id, spawns the
// entity through the same action pipeline human clients use, marks the
// agent enabled, and starts its runner -- failing if the runner doesn't
// confirm its first tick.
func (m *Manager) Deploy(ctx context.Context, req DeployRequest) (*DeployResult, error) {
	m.mu.Lock()
	if _, exists := m.runners[req.OwnerWallet]; exists {
		m.mu.Unlock()
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "agent already deployed for wallet %q", req.OwnerWallet)
	}
	m.mu.Unlock()

	custodialAddr, sealedKey, err := newCustodialWallet(m.encKey)
	if err != nil {
		return nil, err
	}
	m.store.SaveKeyBlob(req.OwnerWallet, sealedKey)

	if _, err := m.chain.MintGold(ctx, common.HexToAddress(custodialAddr), big.NewInt(starterGoldCopper)); err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "mint starter gold: %v", err)
	}

	// Driver has no dedicated character-mint call; a token id is reserved
	// against the character contract's counter and recorded on the entity,
	// matching onchain.Driver's existing NextID contract.
	tokenID, err := m.chain.NextID(ctx, onchain.ContractCharacter)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "reserve character token: %v", err)
	}

	auth := action.AuthContext{Wallet: custodialAddr}
	spawnResult, err := m.dispatcher.Spawn(ctx, auth, action.SpawnRequest{
		ZoneID: req.ZoneID, Name: req.Name, RaceID: req.RaceID, ClassID: req.ClassID, Gender: req.Gender, Level: 1,
	})
	if err != nil {
		return nil, err
	}
	spawnResult.Entity.CharacterTokenID = int(tokenID.Int64())

	focus := req.Focus
	if focus == "" {
		focus = "idle"
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = "balanced"
	}
	cfg := store.AgentConfig{
		Enabled:         true,
		Focus:           focus,
		Strategy:        strategy,
		CustodialWallet: custodialAddr,
		EntityRef:       store.AgentEntityRef{ZoneID: req.ZoneID, EntityID: spawnResult.Entity.ID},
		LastUpdated:     time.Now().Unix(),
	}
	m.store.SaveAgentConfig(req.OwnerWallet, cfg)

	runner := &Runner{
		wallet:     custodialAddr,
		dispatcher: m.dispatcher,
		runtime:    m.runtime,
		store:      m.store,
		llm:        m.llm,
		log:        m.log,
		state:      StateStopped,
		cfg:        cfg,
	}

	m.mu.Lock()
	m.runners[req.OwnerWallet] = runner
	m.mu.Unlock()

	if err := runner.start(ctx); err != nil {
		m.mu.Lock()
		delete(m.runners, req.OwnerWallet)
		m.mu.Unlock()
		return nil, err
	}

	return &DeployResult{
		CustodialWallet: custodialAddr,
		CharacterToken:  tokenID.Int64(),
		EntityID:        spawnResult.Entity.ID,
	}, nil
}
