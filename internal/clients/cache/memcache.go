package cache

import (
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/budget-bot/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

var defaultBase = 10

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

func formatKey(userID int64, monthID string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + monthID
}

func (mc *MemcacheClient) CacheReport(userID int64, monthID string, report string) error {
	logger.Info("cache report", zap.Int64("userID", userID), zap.String("month", monthID))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, monthID),
		Value: []byte(report)},
	)
}

func (mc *MemcacheClient) GetReport(userID int64, monthID string) (string, error) {
	logger.Info("get report from cache", zap.Int64("userID", userID), zap.String("month", monthID))
	item, err := mc.client.Get(formatKey(userID, monthID))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

// InvalidateReports drops the cached reports for the given months, typically
// after one of them was mutated. A miss is not an error.
func (mc *MemcacheClient) InvalidateReports(userID int64, monthIDs []string) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	for _, id := range monthIDs {
		err := mc.client.Delete(formatKey(userID, id))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
