package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Clock supplies the operational date, the day the clinic treats as "today".
type Clock interface {
	Today() time.Time
}

const RedisOperationalDateKey = "clinic:operational_date"

const (
	clockRefreshInterval = 2 * time.Second
	clockReadTimeout     = 500 * time.Millisecond
)

// dateStore is the slice of the Redis API the clock needs.
type dateStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// OperationalClock is the shared operational date. It only changes when Set
// or AdvanceTo is called on any instance. Redis holds the authoritative value;
// Today re-reads it at most once per clockRefreshInterval and falls back to the
// last known date when Redis is unreachable. A nil Redis client keeps the
// date in memory only.
type OperationalClock struct {
	store dateStore
	log   *logrus.Logger
	now   func() time.Time

	mu          sync.RWMutex
	current     time.Time
	refreshedAt time.Time
}

func NewOperationalClock(redisClient *redis.Client, log *logrus.Logger) *OperationalClock {
	c := &OperationalClock{
		log:     log,
		now:     time.Now,
		current: entity.DateOf(time.Now().UTC()),
	}
	if redisClient != nil {
		c.store = redisClient
	}
	return c
}

func (c *OperationalClock) Today() time.Time {
	if c.store != nil && c.stale() {
		ctx, cancel := context.WithTimeout(context.Background(), clockReadTimeout)
		defer cancel()

		if err := c.refresh(ctx); err != nil && !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to refresh operational date, keeping cached value: %+v", err)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *OperationalClock) stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now().Sub(c.refreshedAt) >= clockRefreshInterval
}

// refresh replaces the cached date with the stored one. It returns redis.Nil
// when nothing is stored. Failed reads still count as a refresh so an outage
// does not turn every Today call into a Redis round trip.
func (c *OperationalClock) refresh(ctx context.Context) error {
	stored, err := c.store.Get(ctx, RedisOperationalDateKey).Result()

	c.mu.Lock()
	c.refreshedAt = c.now()
	c.mu.Unlock()

	if err != nil {
		return err
	}

	date, err := entity.ParseDate(stored)
	if err != nil {
		return fmt.Errorf("stored operational date %q: %w", stored, err)
	}

	c.mu.Lock()
	c.current = date
	c.mu.Unlock()
	return nil
}

// Load pulls the stored operational date from Redis. When nothing is stored
// yet the current value is written so other instances pick it up.
func (c *OperationalClock) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	err := c.refresh(ctx)
	if errors.Is(err, redis.Nil) {
		c.mu.RLock()
		current := c.current
		c.mu.RUnlock()
		return c.Set(ctx, current)
	}
	if err != nil {
		return fmt.Errorf("load operational date: %w", err)
	}

	c.log.Infof("Operational date loaded: %s", c.Today().Format(entity.DateLayout))
	return nil
}

// Set moves the operational date to date, forwards or backwards.
func (c *OperationalClock) Set(ctx context.Context, date time.Time) error {
	date = entity.DateOf(date)

	if c.store != nil {
		if err := c.store.Set(ctx, RedisOperationalDateKey, date.Format(entity.DateLayout), 0).Err(); err != nil {
			return fmt.Errorf("store operational date: %w", err)
		}
	}

	c.mu.Lock()
	c.current = date
	c.refreshedAt = c.now()
	c.mu.Unlock()

	c.log.Infof("Operational date set to %s", date.Format(entity.DateLayout))
	return nil
}

// AdvanceTo moves the operational date forward to date. Earlier dates are ignored.
// Returns whether the date changed.
func (c *OperationalClock) AdvanceTo(ctx context.Context, date time.Time) (bool, error) {
	date = entity.DateOf(date)
	if !date.After(c.Today()) {
		return false, nil
	}
	if err := c.Set(ctx, date); err != nil {
		return false, err
	}
	return true, nil
}

// WallClockDate is the calendar date of the host clock in UTC.
func (c *OperationalClock) WallClockDate() time.Time {
	return entity.DateOf(c.now().UTC())
}
