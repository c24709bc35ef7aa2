package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estatedesk-backend/pkg/logger"
	"estatedesk-backend/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var invalidateListCacheScript *redis.Script

type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func InitRedis(opts Options) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := RedisClient.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	invalidateListCacheScript = redis.NewScript(`
		local set_key = ARGV[1]
		local cache_keys = redis.call('SMEMBERS', set_key)
		if #cache_keys > 0 then
			redis.call('DEL', unpack(cache_keys))
		end
		redis.call('DEL', set_key)
		return 1
	`)

	logger.GlobalLogger.Println("Redis connected successfully")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != redis.Nil {
			metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		}
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	return nil
}

func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return err
	}
	return nil
}

// AddKeyToListSet records a list cache key in the tracking set so that it can
// be invalidated when any property changes.
func AddKeyToListSet(ctx context.Context, cacheKey string) error {
	start := time.Now()
	_, err := RedisClient.SAdd(ctx, PropertyListSetKey(), cacheKey).Result()
	metrics.RedisOperationDuration.WithLabelValues("sadd").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("sadd").Inc()
		return fmt.Errorf("failed to add cache key %s to list set: %v", cacheKey, err)
	}
	return nil
}

// InvalidateListCache drops every cached property list page. Called after any
// property mutation so stale pages are never served.
func InvalidateListCache(ctx context.Context) error {
	start := time.Now()
	_, err := invalidateListCacheScript.Run(ctx, RedisClient, []string{}, PropertyListSetKey()).Result()
	metrics.RedisOperationDuration.WithLabelValues("invalidate_list_cache").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("invalidate_list_cache").Inc()
		return fmt.Errorf("failed to execute invalidate list cache script: %v", err)
	}
	return nil
}
