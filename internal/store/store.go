// Package store is the persistence layer for per-wallet game state:
// character hashes, diary entries, agent config, and the encrypted
// custodial key blob. Writes are dual: in-memory synchronous, external
// (Redis) fire-and-forget. Reads prefer the external store and fall back to
// the in-memory copy when it is unavailable.
package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DiaryCap bounds the diary list per wallet: it is truncated at a fixed
// cap so a long-lived wallet's diary never grows unbounded. The agent
// chat history is capped separately by the agent package.
const DiaryCap = 200

// DiaryEntry is one append-only diary line for a wallet.
type DiaryEntry struct {
	ID        string         `json:"id"`
	Timestamp int64          `json:"timestamp"`
	ZoneID    string         `json:"zoneId"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Action    string         `json:"action"`
	Headline  string         `json:"headline"`
	Narrative string         `json:"narrative"`
	Details   map[string]any `json:"details,omitempty"`
}

// CharacterHash is the persisted per-wallet character record.
type CharacterHash struct {
	Name                 string   `json:"name"`
	Level                int      `json:"level"`
	XP                   int64    `json:"xp"`
	RaceID               string   `json:"raceId"`
	ClassID              string   `json:"classId"`
	Gender               string   `json:"gender"`
	Zone                 string   `json:"zone"`
	X                    float64  `json:"x"`
	Y                    float64  `json:"y"`
	Kills                int      `json:"kills"`
	CompletedQuests      []string `json:"completedQuests"`
	LearnedTechniques    []string `json:"learnedTechniques"`
	Professions          []string `json:"professions"`
	SignatureTechniqueID string   `json:"signatureTechniqueId,omitempty"`
	UltimateTechniqueID  string   `json:"ultimateTechniqueId,omitempty"`
}

// AgentConfig is the persisted per-wallet autonomous-agent configuration.
type AgentConfig struct {
	Enabled         bool              `json:"enabled"`
	Focus           string            `json:"focus"`
	Strategy        string            `json:"strategy"`
	TargetZone      string            `json:"targetZone,omitempty"`
	ChatHistory     []AgentChatTurn   `json:"chatHistory,omitempty"`
	CustodialWallet string            `json:"custodialWallet"`
	EntityRef       AgentEntityRef    `json:"entityRef"`
	LastUpdated     int64             `json:"lastUpdated"`
}

// AgentChatTurn is one turn of the bounded per-wallet chat transcript.
type AgentChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
	At      int64  `json:"at"`
}

// AgentEntityRef names the live entity a running agent drives.
type AgentEntityRef struct {
	ZoneID   string `json:"zoneId,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

// walletRecord is the in-memory mirror of everything persisted per wallet.
type walletRecord struct {
	character  *CharacterHash
	diary      []DiaryEntry
	agent      *AgentConfig
	keyBlob    []byte
}

// Store is the dual-write, external-first-read persistence layer.
type Store struct {
	mu      sync.RWMutex
	mem     map[string]*walletRecord
	redis   *redis.Client
	log     zerolog.Logger
	timeout time.Duration
}

// New returns a Store. redisClient may be nil, in which case the store
// operates purely in-memory -- REDIS_URL is optional and falls back to
// this mode when unset.
func New(redisClient *redis.Client, log zerolog.Logger) *Store {
	return &Store{
		mem:     map[string]*walletRecord{},
		redis:   redisClient,
		log:     log,
		timeout: 2 * time.Second,
	}
}

func walletKey(wallet string) string {
	return strings.ToLower(wallet)
}

func (s *Store) record(wallet string) *walletRecord {
	key := walletKey(wallet)
	r, ok := s.mem[key]
	if !ok {
		r = &walletRecord{}
		s.mem[key] = r
	}
	return r
}

func (s *Store) redisKey(wallet, field string) string {
	return "wog:wallet:" + walletKey(wallet) + ":" + field
}

// fireAndForget runs a Redis write on its own context with the store's
// timeout, logging failures without blocking the caller — the in-memory
// write has already committed synchronously by the time this runs.
func (s *Store) fireAndForget(op string, wallet string, fn func(ctx context.Context) error) {
	if s.redis == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Warn().Err(err).Str("op", op).Str("wallet", wallet).Msg("store: external write failed")
		}
	}()
}

// SaveCharacter writes a character hash: in-memory synchronously, Redis
// fire-and-forget.
func (s *Store) SaveCharacter(wallet string, ch CharacterHash) {
	s.mu.Lock()
	rec := s.record(wallet)
	cp := ch
	rec.character = &cp
	s.mu.Unlock()

	s.fireAndForget("saveCharacter", wallet, func(ctx context.Context) error {
		data, err := json.Marshal(ch)
		if err != nil {
			return err
		}
		return s.redis.Set(ctx, s.redisKey(wallet, "character"), data, 0).Err()
	})
}

// LoadCharacter reads external-first, falling back to the in-memory copy
// when Redis is unavailable or the key is absent there but present locally.
func (s *Store) LoadCharacter(ctx context.Context, wallet string) (*CharacterHash, bool) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.redisKey(wallet, "character")).Bytes()
		if err == nil {
			var ch CharacterHash
			if jerr := json.Unmarshal(data, &ch); jerr == nil {
				return &ch, true
			}
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Str("wallet", wallet).Msg("store: redis read failed, falling back to memory")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.mem[walletKey(wallet)]
	if !ok || rec.character == nil {
		return nil, false
	}
	cp := *rec.character
	return &cp, true
}

// AppendDiary prepends an entry (newest-first) and truncates to DiaryCap.
func (s *Store) AppendDiary(wallet string, entry DiaryEntry) {
	s.mu.Lock()
	rec := s.record(wallet)
	rec.diary = append([]DiaryEntry{entry}, rec.diary...)
	if len(rec.diary) > DiaryCap {
		rec.diary = rec.diary[:DiaryCap]
	}
	snapshot := append([]DiaryEntry(nil), rec.diary...)
	s.mu.Unlock()

	s.fireAndForget("appendDiary", wallet, func(ctx context.Context) error {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		return s.redis.Set(ctx, s.redisKey(wallet, "diary"), data, 0).Err()
	})
}

// LoadDiary reads external-first, falling back to memory.
func (s *Store) LoadDiary(ctx context.Context, wallet string) []DiaryEntry {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.redisKey(wallet, "diary")).Bytes()
		if err == nil {
			var entries []DiaryEntry
			if jerr := json.Unmarshal(data, &entries); jerr == nil {
				return entries
			}
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Str("wallet", wallet).Msg("store: redis read failed, falling back to memory")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.mem[walletKey(wallet)]
	if !ok {
		return nil
	}
	return append([]DiaryEntry(nil), rec.diary...)
}

// SaveAgentConfig writes a wallet's agent configuration.
func (s *Store) SaveAgentConfig(wallet string, cfg AgentConfig) {
	s.mu.Lock()
	rec := s.record(wallet)
	cp := cfg
	rec.agent = &cp
	s.mu.Unlock()

	s.fireAndForget("saveAgentConfig", wallet, func(ctx context.Context) error {
		data, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		return s.redis.Set(ctx, s.redisKey(wallet, "agent"), data, 0).Err()
	})
}

// LoadAgentConfig reads external-first, falling back to memory.
func (s *Store) LoadAgentConfig(ctx context.Context, wallet string) (*AgentConfig, bool) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.redisKey(wallet, "agent")).Bytes()
		if err == nil {
			var cfg AgentConfig
			if jerr := json.Unmarshal(data, &cfg); jerr == nil {
				return &cfg, true
			}
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Str("wallet", wallet).Msg("store: redis read failed, falling back to memory")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.mem[walletKey(wallet)]
	if !ok || rec.agent == nil {
		return nil, false
	}
	cp := *rec.agent
	return &cp, true
}

// SaveKeyBlob stores the encrypted custodial private key blob for wallet.
func (s *Store) SaveKeyBlob(wallet string, blob []byte) {
	s.mu.Lock()
	rec := s.record(wallet)
	rec.keyBlob = append([]byte(nil), blob...)
	s.mu.Unlock()

	s.fireAndForget("saveKeyBlob", wallet, func(ctx context.Context) error {
		return s.redis.Set(ctx, s.redisKey(wallet, "keyblob"), blob, 0).Err()
	})
}

// LoadKeyBlob reads external-first, falling back to memory.
func (s *Store) LoadKeyBlob(ctx context.Context, wallet string) ([]byte, bool) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.redisKey(wallet, "keyblob")).Bytes()
		if err == nil {
			return data, true
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Str("wallet", wallet).Msg("store: redis read failed, falling back to memory")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.mem[walletKey(wallet)]
	if !ok || rec.keyBlob == nil {
		return nil, false
	}
	return append([]byte(nil), rec.keyBlob...), true
}

// AllWallets returns every wallet this process has an in-memory record for,
// used by the leaderboard projection (there is no secondary index in
// Redis for this; it is recomputed on demand).
func (s *Store) AllWallets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.mem))
	for w := range s.mem {
		out = append(out, w)
	}
	return out
}
