// README: Conversation history store backed by Redis snapshots.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripmate/internal/bot"
)

const (
	keyPrefix = "bot:history:%s"
	// Snapshots outlive server restarts but not idle users.
	snapshotTTL = 7 * 24 * time.Hour
)

// ErrNoHistory is returned when no snapshot exists for the user.
var ErrNoHistory = errors.New("no conversation history")

// Record is the persisted conversation snapshot with metadata.
type Record struct {
	UID       string     `json:"uid"`
	Turns     []bot.Turn `json:"turns"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// SaveSnapshot overwrites the user's conversation snapshot. The structured
// answer inside the turns round-trips through JSON without mutation.
func (s *Store) SaveSnapshot(ctx context.Context, uid string, turns []bot.Turn) error {
	rec := Record{
		UID:       uid,
		Turns:     turns,
		UpdatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, historyKey(uid), payload, snapshotTTL).Err()
}

// LoadSnapshot returns the user's latest conversation snapshot.
func (s *Store) LoadSnapshot(ctx context.Context, uid string) ([]bot.Turn, error) {
	val, err := s.redis.Get(ctx, historyKey(uid)).Result()
	if err == redis.Nil {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, err
	}
	return rec.Turns, nil
}

// Clear removes the user's snapshot (used when a session is reset).
func (s *Store) Clear(ctx context.Context, uid string) error {
	return s.redis.Del(ctx, historyKey(uid)).Err()
}

func historyKey(uid string) string {
	return fmt.Sprintf(keyPrefix, uid)
}
