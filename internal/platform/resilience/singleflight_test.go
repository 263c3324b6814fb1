package resilience

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	var shared atomic.Int32

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, sharedCall := g.Do("key", func() (any, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got, _ := v.(int); got != 42 {
				t.Errorf("unexpected value: %v", v)
			}
			if sharedCall {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fn called %d times, want 1", got)
	}
	if got := shared.Load(); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("key-%d", i)
		if _, err, _ := g.Do(key, func() (any, error) {
			calls.Add(1)
			return key, nil
		}); err != nil {
			t.Fatalf("Do(%s): %v", key, err)
		}
	}

	if got := calls.Load(); got != 3 {
		t.Fatalf("fn called %d times, want 3", got)
	}
}

func TestSingleFlight_ErrorsPropagate(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	wantErr := fmt.Errorf("load failed")

	_, err, _ := g.Do("key", func() (any, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Fatalf("expected propagated error, got %v", err)
	}

	// The failed call must not be cached; a retry runs the fn again.
	v, err, _ := g.Do("key", func() (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if v != "ok" {
		t.Fatalf("retry value: %v", v)
	}
}
