package sortedstorage

import (
	"context"

	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// maxEntries bounds the sorted set; lower-ranked members past it are
	// trimmed away under the lock.
	maxEntries = 100
)

// RedisScoreboard keeps model evaluation scores in a Redis sorted set,
// ranked by best score.
type RedisScoreboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisScoreboard initializes a RedisScoreboard with the provided
// Redis client and set key.
func NewRedisScoreboard(client *redis.Client, key string) (i.Scoreboard, error) {
	board := &RedisScoreboard{
		client: client,
		key:    key,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record upserts the member's score, keeping its highest value, then
// trims the set to the entry bound. The trim runs under a distributed
// lock so concurrent writers do not race on the cut.
func (rs *RedisScoreboard) Record(ctx context.Context, member string, score float64) error {
	_, err := rs.client.ZAddGT(ctx, rs.key, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	mutex := rs.locker.NewMutex(rs.key + ":trim_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	if rs.client.ZCard(ctx, rs.key).Val() > maxEntries {
		_ = rs.client.ZRemRangeByRank(ctx, rs.key, 0, -maxEntries-1).Err()
	}
	return nil
}

// Top returns the n highest-scoring entries in descending order.
func (rs *RedisScoreboard) Top(ctx context.Context, n int64) ([]i.ScoreEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := rs.client.ZRevRangeWithScores(ctx, rs.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.ScoreEntry, 0, len(members))
	for _, z := range members {
		entries = append(entries, i.ScoreEntry{
			Member: z.Member.(string),
			Score:  z.Score,
		})
	}
	return entries, nil
}
