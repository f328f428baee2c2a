package authentication

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/google/uuid"
)

// TokenStore persists refresh tokens between requests. The default
// implementation is redis; tests swap in an in-memory store.
type TokenStore interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
}

type redisStore struct{}

func (redisStore) Set(key string, value string, ttl time.Duration) error {
	return configuration.SetRedis(key, value, ttl)
}

func (redisStore) Get(key string) (string, error) {
	return configuration.GetRedis(key)
}

func (redisStore) Del(key string) error {
	return configuration.DelRedis(key)
}

var Store TokenStore = redisStore{}

func refreshTokenLifetime() time.Duration {
	if raw := os.Getenv("REFRESH_TOKEN_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 7 * 24 * time.Hour
}

// IssueRefreshToken creates an opaque refresh token for the user and
// stores it with an expiry
func IssueRefreshToken(userID uint) (string, error) {
	token := uuid.NewString()
	key := fmt.Sprintf("refresh:%s", token)
	if err := Store.Set(key, strconv.FormatUint(uint64(userID), 10), refreshTokenLifetime()); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemRefreshToken resolves a refresh token to its user id and deletes
// it, so every refresh token is single use
func RedeemRefreshToken(token string) (uint, error) {
	key := fmt.Sprintf("refresh:%s", token)
	value, err := Store.Get(key)
	if err != nil {
		return 0, errors.New("invalid or expired refresh token")
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid refresh token payload")
	}

	if err := Store.Del(key); err != nil {
		return 0, err
	}
	return uint(userID), nil
}
