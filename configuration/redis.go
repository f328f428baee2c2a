package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Client variable can be used to save key value pairs in redis
var Client *redis.Client

// InitRedis function initializes the redis connection used for
// refresh-token storage
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	var err error
	MaxRetries := 5
	RetryDelay := time.Second * 5
	for i := 0; i < MaxRetries; i++ {
		Client = redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})

		_, err = Client.Ping(ctx).Result()
		if err == nil {
			break
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, MaxRetries, err.Error())
		time.Sleep(RetryDelay)
	}
	if err != nil {
		panic("Failed to connect to Redis after multiple attempts: " + err.Error())
	}
}

// SetRedis will set a key value in the redis server
func SetRedis(key string, value any, expirationTime time.Duration) error {
	return Client.Set(context.Background(), key, value, expirationTime).Err()
}

// GetRedis will get the value from the redis server using key
func GetRedis(key string) (string, error) {
	value, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", err
	}
	return value, nil
}

// DelRedis removes a key from the redis server
func DelRedis(key string) error {
	return Client.Del(context.Background(), key).Err()
}
