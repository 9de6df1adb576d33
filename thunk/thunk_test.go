package thunk

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestValueComputedOnce(t *testing.T) {
	var calls int
	th := New(func() int {
		calls++
		return 42
	})

	if th.Evaluated() {
		t.Fatal("Evaluated() = true before first access")
	}
	for i := 0; i < 3; i++ {
		if got := th.Value(); got != 42 {
			t.Errorf("Value() = %d, want 42", got)
		}
	}
	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
	if !th.Evaluated() {
		t.Error("Evaluated() = false after access")
	}
}

func TestConcurrentFirstAccess(t *testing.T) {
	var calls atomic.Int32
	th := New(func() *int {
		calls.Add(1)
		v := 7
		return &v
	})

	const n = 32
	results := make([]*int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = th.Value()
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("computation ran %d times, want 1", got)
	}
	for i, r := range results {
		if r != results[0] {
			t.Errorf("goroutine %d saw a different value", i)
		}
	}
}

func TestPanicRepeatsOnEveryAccess(t *testing.T) {
	var calls int
	th := New(func() int {
		calls++
		panic("boom")
	})

	for i := 0; i < 2; i++ {
		func() {
			defer func() {
				if r := recover(); r != "boom" {
					t.Errorf("access %d recovered %v, want boom", i, r)
				}
			}()
			th.Value()
			t.Errorf("access %d returned without panicking", i)
		}()
	}
	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
}
