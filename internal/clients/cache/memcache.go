package cache

import (
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/expenses-bot/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

// Cached reports are keyed by user and report period.
func formatKey(userID int64, period string) string {
	return "report:" + strconv.FormatInt(userID, 10) + ":" + period
}

func (mc *MemcacheClient) CacheReport(userID int64, period string, report string) error {
	logger.Info("cache report", zap.Int64("userID", userID), zap.String("period", period))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, period),
		Value: []byte(report),
	})
}

func (mc *MemcacheClient) GetReport(userID int64, period string) (string, error) {
	item, err := mc.client.Get(formatKey(userID, period))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

// InvalidateCache drops every cached report period for the user. Called
// whenever a new expense lands so stale totals are never served.
func (mc *MemcacheClient) InvalidateCache(userID int64, periods []string) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	for _, period := range periods {
		err := mc.client.Delete(formatKey(userID, period))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
