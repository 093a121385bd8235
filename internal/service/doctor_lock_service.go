package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

// ErrDoctorBusy is returned when another instance holds the doctor's booking lock past the wait budget
var ErrDoctorBusy = errors.New("another booking for this doctor is in progress")

// releaseLockScript deletes the lock key only if it still carries our token,
// so an expired lock re-acquired by another instance is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// =============================================================================
// Constants
// =============================================================================

const (
	RedisDoctorLockKeyPrefix = "booking:lock:doctor:"

	lockRetryInterval    = 25 * time.Millisecond
	lockReleaseTimeout   = 2 * time.Second
	defaultLockTTL       = 5 * time.Second
	mutexCleanupInterval = 10 * time.Minute
	mutexStaleThreshold  = 10 * time.Minute
)

// =============================================================================
// Types
// =============================================================================

// DoctorLockService serializes booking writes per doctor.
//
// Two layers:
// - an in-process mutex per doctor, so requests on one instance queue locally
// - a Redis SET NX PX lock, so instances sharing the database queue as well
//
// Lock ordering: local mutex FIRST, then the Redis key.
type DoctorLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration

	doctorMu sync.Map // map[int]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// =============================================================================
// Constructor
// =============================================================================

// NewDoctorLockService starts a background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown. A nil Redis client gives local-only locking.
func NewDoctorLockService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *DoctorLockService {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	svc := &DoctorLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *DoctorLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("DoctorLockService stopped")
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Lock blocks until the caller owns the doctor's booking lock and returns the
// function that releases it. The Redis wait is bounded by the lock TTL.
func (s *DoctorLockService) Lock(ctx context.Context, doctorID int) (func(), error) {
	mt := s.getDoctorMutex(doctorID)
	mt.mu.Lock()

	if s.redisClient == nil {
		return mt.mu.Unlock, nil
	}

	key := fmt.Sprintf("%s%d", RedisDoctorLockKeyPrefix, doctorID)
	token := uuid.NewString()
	deadline := time.Now().Add(s.ttl)

	for {
		acquired, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			mt.mu.Unlock()
			s.log.Warnf("Failed to acquire Redis lock for doctor %d: %+v", doctorID, err)
			return nil, fmt.Errorf("acquire lock for doctor %d: %w", doctorID, err)
		}
		if acquired {
			break
		}

		if time.Now().After(deadline) {
			mt.mu.Unlock()
			return nil, ErrDoctorBusy
		}

		select {
		case <-ctx.Done():
			mt.mu.Unlock()
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	unlock := func() {
		defer mt.mu.Unlock()

		releaseCtx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
		defer cancel()
		if err := releaseLockScript.Run(releaseCtx, s.redisClient, []string{key}, token).Err(); err != nil {
			// Key still expires after ttl
			s.log.Warnf("Failed to release Redis lock for doctor %d (non-fatal): %+v", doctorID, err)
		}
	}

	return unlock, nil
}

// =============================================================================
// Private Helper Methods
// =============================================================================

// getDoctorMutex returns mutex for a specific doctor ID
func (s *DoctorLockService) getDoctorMutex(doctorID int) *mutexWithTimestamp {
	mt, _ := s.doctorMu.LoadOrStore(doctorID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *DoctorLockService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes(time.Now().Add(-mutexStaleThreshold))
		}
	}
}

// cleanupStaleMutexes removes mutexes unused since cutoff. TryLock skips the
// ones currently held, and lastUsed is re-read under the lock.
func (s *DoctorLockService) cleanupStaleMutexes(cutoff time.Time) int {
	cutoffUnix := cutoff.Unix()
	var cleaned int

	s.doctorMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffUnix {
				s.doctorMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale mutexes", cleaned)
	}
	return cleaned
}
