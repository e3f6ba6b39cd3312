package usage

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
)

const (
	defaultKeyPrefix = "usage:"
	dayLayout        = "2006-01-02"
)

// Stats holds generation counters per generator kind
type Stats struct {
	Day     string                   `json:"day"`
	Today   map[generator.Kind]int64 `json:"today"`
	Totals  map[generator.Kind]int64 `json:"totals"`
	Backend string                   `json:"backend"`
}

// Tracker counts completed generations. Counters live in Redis when a
// client is configured and in memory otherwise.
type Tracker struct {
	redisClient *redis.Client
	keyPrefix   string
	dailyTTL    time.Duration
	now         func() time.Time

	mu     sync.RWMutex
	totals map[generator.Kind]int64
	daily  map[string]map[generator.Kind]int64
}

// TrackerOptions configures a Tracker
type TrackerOptions struct {
	RedisClient *redis.Client
	KeyPrefix   string
	DailyTTL    time.Duration
	Now         func() time.Time
}

// NewTracker creates a new usage tracker
func NewTracker(opts TrackerOptions) *Tracker {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = defaultKeyPrefix
	}
	if opts.DailyTTL == 0 {
		opts.DailyTTL = 30 * 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Tracker{
		redisClient: opts.RedisClient,
		keyPrefix:   opts.KeyPrefix,
		dailyTTL:    opts.DailyTTL,
		now:         opts.Now,
		totals:      make(map[generator.Kind]int64),
		daily:       make(map[string]map[generator.Kind]int64),
	}
}

func (t *Tracker) totalKey(kind generator.Kind) string {
	return t.keyPrefix + "total:" + string(kind)
}

func (t *Tracker) dailyKey(day string, kind generator.Kind) string {
	return t.keyPrefix + "daily:" + day + ":" + string(kind)
}

// Record counts one completed generation of kind
func (t *Tracker) Record(ctx context.Context, kind generator.Kind) error {
	day := t.now().UTC().Format(dayLayout)

	if t.redisClient == nil {
		t.mu.Lock()
		t.totals[kind]++
		if t.daily[day] == nil {
			t.daily[day] = make(map[generator.Kind]int64)
		}
		t.daily[day][kind]++
		t.mu.Unlock()
		return nil
	}

	dailyKey := t.dailyKey(day, kind)
	_, err := t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, t.totalKey(kind))
		pipe.Incr(ctx, dailyKey)
		pipe.Expire(ctx, dailyKey, t.dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record usage for %s: %w", kind, err)
	}
	return nil
}

// Stats returns today's and all-time counters for every generator
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	day := t.now().UTC().Format(dayLayout)
	stats := &Stats{
		Day:    day,
		Today:  make(map[generator.Kind]int64, len(generator.Kinds)),
		Totals: make(map[generator.Kind]int64, len(generator.Kinds)),
	}

	if t.redisClient == nil {
		stats.Backend = "memory"
		t.mu.RLock()
		defer t.mu.RUnlock()
		for _, kind := range generator.Kinds {
			stats.Totals[kind] = t.totals[kind]
			stats.Today[kind] = t.daily[day][kind]
		}
		return stats, nil
	}

	stats.Backend = "redis"
	keys := make([]string, 0, 2*len(generator.Kinds))
	for _, kind := range generator.Kinds {
		keys = append(keys, t.totalKey(kind), t.dailyKey(day, kind))
	}

	values, err := t.redisClient.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read usage counters: %w", err)
	}

	for i, kind := range generator.Kinds {
		stats.Totals[kind] = parseCounter(values[2*i])
		stats.Today[kind] = parseCounter(values[2*i+1])
	}
	return stats, nil
}

// parseCounter converts an MGET entry to a count; missing keys count as zero
func parseCounter(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
