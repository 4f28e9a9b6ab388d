package otp

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/innkeep/internal/pkg/clock"
)

const sweepInterval = 5 * time.Minute

// Purpose distinguishes the two challenge kinds held by the store.
type Purpose int

const (
	// PurposeOTP is a short numeric code delivered to the requester.
	PurposeOTP Purpose = iota
	// PurposeResetCredential is the longer-lived bearer token issued after a
	// successful OTP verification.
	PurposeResetCredential
)

// String returns the string representation of the purpose.
func (p Purpose) String() string {
	if p == PurposeResetCredential {
		return "reset_credential"
	}
	return "otp"
}

// Status is the outcome of a verification attempt.
type Status int

const (
	// StatusMatch means the supplied code was correct; the challenge is consumed.
	StatusMatch Status = iota
	// StatusNoChallenge means no live challenge exists for the key.
	StatusNoChallenge
	// StatusExpired means the challenge outlived its TTL.
	StatusExpired
	// StatusTooManyAttempts means the attempt budget is exhausted.
	StatusTooManyAttempts
	// StatusMismatch means the supplied code was wrong but attempts remain.
	StatusMismatch
)

// Result carries the verification outcome; Remaining is only meaningful for
// StatusMismatch.
type Result struct {
	Status    Status
	Remaining int
}

type challenge struct {
	codeHash    [sha256.Size]byte
	purpose     Purpose
	createdAt   time.Time
	expiresAt   time.Time
	attempts    int
	maxAttempts int
}

// Store maps challenge keys to live challenge records.
//
// All mutations go through a single mutex so the read-increment-compare-delete
// sequence of CheckAndConsume is one atomic unit; two concurrent calls with the
// correct code can never both observe a match. Nothing inside the critical
// section performs I/O.
type Store struct {
	mu    sync.Mutex
	items map[string]*challenge
	clock clock.Clocker
}

// NewStore returns an empty store reading time from the given clock.
func NewStore(clk clock.Clocker) *Store {
	return &Store{
		items: make(map[string]*challenge),
		clock: clk,
	}
}

// Put creates or overwrites the challenge for key. A new challenge always
// starts with a zero attempt counter; any previous secret for the same key
// stops matching immediately.
func (s *Store) Put(key, code string, purpose Purpose, ttl time.Duration, maxAttempts int) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = &challenge{
		codeHash:    sha256.Sum256([]byte(code)),
		purpose:     purpose,
		createdAt:   now,
		expiresAt:   now.Add(ttl),
		maxAttempts: maxAttempts,
	}
}

// CheckAndConsume verifies code against the challenge stored for key.
//
// Expired and attempt-exhausted records are deleted on sight. A correct match
// deletes the record so redemption is at most once. The secret comparison is
// constant time over SHA-256 digests.
func (s *Store) CheckAndConsume(key, code string) Result {
	digest := sha256.Sum256([]byte(code))
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[key]
	if !ok {
		return Result{Status: StatusNoChallenge}
	}

	if now.After(c.expiresAt) {
		delete(s.items, key)
		return Result{Status: StatusExpired}
	}

	if c.attempts >= c.maxAttempts {
		delete(s.items, key)
		return Result{Status: StatusTooManyAttempts}
	}

	c.attempts++

	if subtle.ConstantTimeCompare(digest[:], c.codeHash[:]) == 1 {
		delete(s.items, key)
		return Result{Status: StatusMatch}
	}

	if c.attempts >= c.maxAttempts {
		delete(s.items, key)
		return Result{Status: StatusTooManyAttempts}
	}

	return Result{Status: StatusMismatch, Remaining: c.maxAttempts - c.attempts}
}

// SweepExpired removes every record past its expiry and reports how many were
// deleted. Purely memory reclamation; reads re-validate expiry on their own.
func (s *Store) SweepExpired() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, c := range s.items {
		if now.After(c.expiresAt) {
			delete(s.items, key)
			removed++
		}
	}

	return removed
}

// Run sweeps expired challenges on a fixed interval until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.SweepExpired(); n > 0 {
				slog.DebugContext(ctx, "swept expired challenges", "removed", n)
			}
		}
	}
}
