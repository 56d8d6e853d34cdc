package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SeatCache menyimpan daftar kursi terpesan per jadwal.
// Semua error cache hanya di-log; pemanggil selalu bisa jatuh ke database.
//
// Get also returns the schedule's cache version. Set only writes when that
// version is still current, so a reader that loaded seats before a booking
// committed cannot overwrite the invalidation with its stale list.
type SeatCache interface {
	Get(ctx context.Context, scheduleID uuid.UUID) (seats []string, version int64, hit bool)
	Set(ctx context.Context, scheduleID uuid.UUID, version int64, seats []string)
	Invalidate(ctx context.Context, scheduleID uuid.UUID)
}

// NewRedisClient returns nil when Addr is empty or Redis is unreachable.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, seat cache disabled", zap.String("addr", config.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}

// NewSeatCache returns a no-op cache when client is nil.
func NewSeatCache(client *redis.Client, ttl time.Duration, log *zap.Logger) SeatCache {
	if client == nil {
		return noopSeatCache{}
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisSeatCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "seat")),
	}
}

type redisSeatCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// versionTTL jauh lebih lama dari TTL entry supaya versi tidak reset selagi masih dipakai
const versionTTL = 24 * time.Hour

var errStaleVersion = errors.New("seat cache version moved")

func seatKey(scheduleID uuid.UUID) string {
	return fmt.Sprintf("bioskop:schedule:%s:booked_seats", scheduleID)
}

func versionKey(scheduleID uuid.UUID) string {
	return seatKey(scheduleID) + ":version"
}

func (c *redisSeatCache) Get(ctx context.Context, scheduleID uuid.UUID) ([]string, int64, bool) {
	vals, err := c.client.MGet(ctx, seatKey(scheduleID), versionKey(scheduleID)).Result()
	if err != nil {
		c.log.Warn("Seat cache read failed", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
		return nil, 0, false
	}

	var version int64
	if raw, ok := vals[1].(string); ok {
		version, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.log.Warn("Seat cache version corrupt", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
			return nil, 0, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}

	var seats []string
	if err := json.Unmarshal([]byte(raw), &seats); err != nil {
		c.log.Warn("Seat cache entry corrupt", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
		return nil, version, false
	}
	return seats, version, true
}

func (c *redisSeatCache) Set(ctx context.Context, scheduleID uuid.UUID, version int64, seats []string) {
	if seats == nil {
		seats = []string{}
	}
	raw, err := json.Marshal(seats)
	if err != nil {
		return
	}

	key, vkey := seatKey(scheduleID), versionKey(scheduleID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		c.log.Debug("Seat cache write skipped, schedule changed", zap.String("schedule_id", scheduleID.String()))
	default:
		c.log.Warn("Seat cache write failed", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
	}
}

func (c *redisSeatCache) Invalidate(ctx context.Context, scheduleID uuid.UUID) {
	vkey := versionKey(scheduleID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vkey)
		pipe.Expire(ctx, vkey, versionTTL)
		pipe.Del(ctx, seatKey(scheduleID))
		return nil
	})
	if err != nil {
		c.log.Warn("Seat cache invalidate failed", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
	}
}

type noopSeatCache struct{}

func (noopSeatCache) Get(context.Context, uuid.UUID) ([]string, int64, bool) { return nil, 0, false }
func (noopSeatCache) Set(context.Context, uuid.UUID, int64, []string)        {}
func (noopSeatCache) Invalidate(context.Context, uuid.UUID)                  {}
