package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "exeat_backend/internals/features/users/auth/model"
)

// Blacklist keeps revoked access tokens until they would have expired anyway.
// Only an HMAC of the token is stored.
type Blacklist interface {
	Add(ctx context.Context, rawAccessToken string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, rawAccessToken string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

/* =========================================================
   DATABASE (default)
========================================================= */

type DBBlacklist struct {
	DB     *gorm.DB
	Secret string
	Now    func() time.Time
}

func NewDBBlacklist(db *gorm.DB, jwtSecret string) *DBBlacklist {
	return &DBBlacklist{DB: db, Secret: jwtSecret, Now: time.Now}
}

func (b *DBBlacklist) Add(ctx context.Context, rawAccessToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawAccessToken) == "" {
		return nil
	}
	row := authModel.TokenBlacklist{
		Token:     hmacHex(rawAccessToken, b.Secret),
		ExpiredAt: expiresAt.UTC(),
	}
	return b.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
		}).
		Create(&row).Error
}

func (b *DBBlacklist) IsBlacklisted(ctx context.Context, rawAccessToken string) (bool, error) {
	if strings.TrimSpace(rawAccessToken) == "" {
		return false, nil
	}
	var n int64
	err := b.DB.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", hmacHex(rawAccessToken, b.Secret), b.Now().UTC()).
		Count(&n).Error
	return n > 0, err
}

func (b *DBBlacklist) PurgeExpired(ctx context.Context) (int64, error) {
	res := b.DB.WithContext(ctx).
		Where("expired_at <= ?", b.Now().UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

/* =========================================================
   REDIS (when REDIS_URL is configured)
========================================================= */

const redisKeyPrefix = "exeat:blacklist:"

type RedisBlacklist struct {
	Client *redis.Client
	Secret string
	Now    func() time.Time
}

func NewRedisBlacklist(client *redis.Client, jwtSecret string) *RedisBlacklist {
	return &RedisBlacklist{Client: client, Secret: jwtSecret, Now: time.Now}
}

func (b *RedisBlacklist) Add(ctx context.Context, rawAccessToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawAccessToken) == "" {
		return nil
	}
	ttl := expiresAt.Sub(b.Now())
	if ttl <= 0 {
		return nil
	}
	return b.Client.Set(ctx, redisKeyPrefix+hmacHex(rawAccessToken, b.Secret), 1, ttl).Err()
}

func (b *RedisBlacklist) IsBlacklisted(ctx context.Context, rawAccessToken string) (bool, error) {
	if strings.TrimSpace(rawAccessToken) == "" {
		return false, nil
	}
	err := b.Client.Get(ctx, redisKeyPrefix+hmacHex(rawAccessToken, b.Secret)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PurgeExpired is a no-op: keys carry their own TTL.
func (b *RedisBlacklist) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
