package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client used to share rendered pages between
// replicas and checks the connection once.
func ConnectRedis(ctx context.Context, host, port string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
		DB:   0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[database][redis] ping failed addr=%s:%s err=%v", host, port, err)
		_ = rdb.Close()
		return nil, err
	}
	log.Printf("[database][redis] client initialized addr=%s:%s", host, port)
	return rdb, nil
}
