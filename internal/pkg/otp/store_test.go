package otp

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStoreCheckAndConsumeMatch(t *testing.T) {
	store := NewStore(newFakeClock())
	store.Put("user@x.com", "482193", PurposeOTP, OTPTTL, OTPMaxAttempts)

	if got := store.CheckAndConsume("user@x.com", "482193"); got.Status != StatusMatch {
		t.Fatalf("expected match, got %v", got.Status)
	}

	// consumed on match, a second try must not find it
	if got := store.CheckAndConsume("user@x.com", "482193"); got.Status != StatusNoChallenge {
		t.Fatalf("expected no challenge after consume, got %v", got.Status)
	}
}

func TestStoreCheckAndConsumeUnknownKey(t *testing.T) {
	store := NewStore(newFakeClock())

	if got := store.CheckAndConsume("nobody@x.com", "000000"); got.Status != StatusNoChallenge {
		t.Fatalf("expected no challenge, got %v", got.Status)
	}
}

func TestStoreCheckAndConsumeMismatchCountsDown(t *testing.T) {
	store := NewStore(newFakeClock())
	store.Put("user@x.com", "482193", PurposeOTP, OTPTTL, OTPMaxAttempts)

	got := store.CheckAndConsume("user@x.com", "000000")
	if got.Status != StatusMismatch || got.Remaining != 2 {
		t.Fatalf("expected mismatch with 2 remaining, got %v remaining %d", got.Status, got.Remaining)
	}

	got = store.CheckAndConsume("user@x.com", "111111")
	if got.Status != StatusMismatch || got.Remaining != 1 {
		t.Fatalf("expected mismatch with 1 remaining, got %v remaining %d", got.Status, got.Remaining)
	}

	if got = store.CheckAndConsume("user@x.com", "222222"); got.Status != StatusTooManyAttempts {
		t.Fatalf("expected too many attempts on final wrong guess, got %v", got.Status)
	}

	// the record is gone, even the correct code is useless now
	if got = store.CheckAndConsume("user@x.com", "482193"); got.Status != StatusNoChallenge {
		t.Fatalf("expected no challenge after lockout, got %v", got.Status)
	}
}

func TestStoreCheckAndConsumeExpired(t *testing.T) {
	clk := newFakeClock()
	store := NewStore(clk)
	store.Put("user@x.com", "482193", PurposeOTP, OTPTTL, OTPMaxAttempts)

	clk.Advance(OTPTTL + time.Second)

	if got := store.CheckAndConsume("user@x.com", "482193"); got.Status != StatusExpired {
		t.Fatalf("expected expired regardless of correct code, got %v", got.Status)
	}

	if got := store.CheckAndConsume("user@x.com", "482193"); got.Status != StatusNoChallenge {
		t.Fatalf("expected lazy deletion on expiry, got %v", got.Status)
	}
}

func TestStorePutOverwritesOutstandingChallenge(t *testing.T) {
	store := NewStore(newFakeClock())
	store.Put("user@x.com", "111111", PurposeOTP, OTPTTL, OTPMaxAttempts)
	store.Put("user@x.com", "222222", PurposeOTP, OTPTTL, OTPMaxAttempts)

	got := store.CheckAndConsume("user@x.com", "111111")
	if got.Status != StatusMismatch {
		t.Fatalf("old code must stop matching after overwrite, got %v", got.Status)
	}

	if got = store.CheckAndConsume("user@x.com", "222222"); got.Status != StatusMatch {
		t.Fatalf("new code must match, got %v", got.Status)
	}
}

func TestStorePutResetsAttemptBudget(t *testing.T) {
	store := NewStore(newFakeClock())
	store.Put("user@x.com", "111111", PurposeOTP, OTPTTL, OTPMaxAttempts)

	store.CheckAndConsume("user@x.com", "000000")
	store.CheckAndConsume("user@x.com", "000000")

	store.Put("user@x.com", "222222", PurposeOTP, OTPTTL, OTPMaxAttempts)

	got := store.CheckAndConsume("user@x.com", "000000")
	if got.Status != StatusMismatch || got.Remaining != 2 {
		t.Fatalf("expected a fresh budget after re-issue, got %v remaining %d", got.Status, got.Remaining)
	}
}

func TestStoreSweepExpired(t *testing.T) {
	clk := newFakeClock()
	store := NewStore(clk)
	store.Put("a@x.com", "111111", PurposeOTP, OTPTTL, OTPMaxAttempts)
	store.Put("b@x.com", "222222", PurposeOTP, time.Hour, OTPMaxAttempts)

	clk.Advance(OTPTTL + time.Second)

	if removed := store.SweepExpired(); removed != 1 {
		t.Fatalf("expected 1 swept record, got %d", removed)
	}

	if got := store.CheckAndConsume("a@x.com", "111111"); got.Status != StatusNoChallenge {
		t.Fatalf("swept challenge must be gone, got %v", got.Status)
	}

	if got := store.CheckAndConsume("b@x.com", "222222"); got.Status != StatusMatch {
		t.Fatalf("live challenge must survive the sweep, got %v", got.Status)
	}
}

func TestStoreConcurrentConsumeIsAtMostOnce(t *testing.T) {
	store := NewStore(newFakeClock())
	store.Put("user@x.com", "482193", PurposeOTP, OTPTTL, 1000)

	const workers = 64

	var wg sync.WaitGroup
	results := make(chan Status, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.CheckAndConsume("user@x.com", "482193").Status
		}()
	}
	wg.Wait()
	close(results)

	matches := 0
	for status := range results {
		if status == StatusMatch {
			matches++
		}
	}

	if matches != 1 {
		t.Fatalf("exactly one concurrent verification may match, got %d", matches)
	}
}
