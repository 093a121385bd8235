package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorLockService_SerializesPerDoctor(t *testing.T) {
	svc := NewDoctorLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := svc.Lock(context.Background(), 42)
			if !assert.NoError(t, err) {
				return
			}

			n := inside.Add(1)
			for {
				current := maxInside.Load()
				if n <= current || maxInside.CompareAndSwap(current, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
}

func TestDoctorLockService_DifferentDoctorsDoNotBlock(t *testing.T) {
	svc := NewDoctorLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	unlockA, err := svc.Lock(context.Background(), 1)
	require.NoError(t, err)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := svc.Lock(context.Background(), 2)
		if err == nil {
			unlockB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for another doctor was blocked")
	}
}

func TestDoctorLockService_CleanupStaleMutexes(t *testing.T) {
	svc := NewDoctorLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	unlock, err := svc.Lock(context.Background(), 5)
	require.NoError(t, err)
	unlock()

	held, err := svc.Lock(context.Background(), 6)
	require.NoError(t, err)

	cleaned := svc.cleanupStaleMutexes(time.Now().Add(time.Hour))
	assert.Equal(t, 1, cleaned)

	_, stillThere := svc.doctorMu.Load(6)
	assert.True(t, stillThere)
	held()
}

func TestDoctorLockService_StopIsIdempotent(t *testing.T) {
	svc := NewDoctorLockService(nil, quietLogger(), 0)
	svc.Stop()
	svc.Stop()
	assert.Equal(t, defaultLockTTL, svc.ttl)
}
