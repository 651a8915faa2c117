package geocode

import(
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
)

// A Store is somewhere to keep answers between runs.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}

// {{{ RedisStore

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{Client:client}, nil
}

func (s *RedisStore)Get(ctx context.Context, key string) (string, bool, error) {
	val,err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil { return "", false, nil }
	if err != nil { return "", false, err }
	return val, true, nil
}

func (s *RedisStore)Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return s.Client.Set(ctx, key, val, ttl).Err()
}

func (s *RedisStore)Close() error { return s.Client.Close() }

// }}}

// {{{ Cached

// Cached wraps a geocoder with a store. Only successes are kept, so a name that failed
// is tried again next run. A broken store never fails a lookup.
type Cached struct {
	Geocoder
	Store   Store
	TTL     time.Duration
	Logger  *zap.Logger
}

func cacheKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

func encodeLocation(l fq.Location) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Long, 'f', -1, 64)
}

func decodeLocation(s string) (fq.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 { return fq.Location{}, fmt.Errorf("bad cached location '%s'", s) }
	lat,err1  := strconv.ParseFloat(parts[0], 64)
	long,err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil { return fq.Location{}, fmt.Errorf("bad cached location '%s'", s) }
	return fq.Location{Lat:lat, Long:long}, nil
}

func (c Cached)logger() *zap.Logger {
	if c.Logger == nil { return zap.NewNop() }
	return c.Logger
}

func (c Cached)Geocode(ctx context.Context, query string) (fq.Location, error) {
	key := cacheKey(query)

	if val,hit,err := c.Store.Get(ctx, key); err != nil {
		c.logger().Warn("geocode cache get", zap.String("key", key), zap.Error(err))
	} else if hit {
		if loc,err := decodeLocation(val); err == nil {
			return loc, nil
		} else {
			c.logger().Warn("geocode cache entry", zap.String("key", key), zap.Error(err))
		}
	}

	loc,err := c.Geocoder.Geocode(ctx, query)
	if err != nil { return loc, err }

	if err := c.Store.Set(ctx, key, encodeLocation(loc), c.TTL); err != nil {
		c.logger().Warn("geocode cache set", zap.String("key", key), zap.Error(err))
	}
	return loc, nil
}

// }}}
