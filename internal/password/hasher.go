package password

import (
	"context"
	"runtime"
)

// Hasher runs Argon2id derivations on a bounded pool of worker goroutines.
// The derivation is deliberately CPU- and memory-expensive, so it must not
// run inline with request handling: callers submit a job and wait, and the
// pool caps how many derivations run at once.
type Hasher struct {
	jobs chan job
}

type job struct {
	run  func() result
	done chan result
}

type result struct {
	encoded string
	err     error
}

// NewHasher starts a hasher with the given number of workers. A value of
// zero or less falls back to runtime.NumCPU().
func NewHasher(workers int) *Hasher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	h := &Hasher{
		jobs: make(chan job),
	}
	for i := 0; i < workers; i++ {
		go h.worker()
	}
	return h
}

func (h *Hasher) worker() {
	for j := range h.jobs {
		j.done <- j.run()
	}
}

// Hash derives a fresh salted hash for the password. It blocks until a
// worker picks up the job or the context is cancelled.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	res, err := h.submit(ctx, func() result {
		encoded, err := hash(password)
		return result{encoded: encoded, err: err}
	})
	if err != nil {
		return "", err
	}
	return res.encoded, res.err
}

// Verify checks the password against a stored hash on a pool worker.
// Returns ErrMismatch on a wrong password and ErrCorruptHash if the stored
// string cannot be decoded.
func (h *Hasher) Verify(ctx context.Context, password, encoded string) error {
	res, err := h.submit(ctx, func() result {
		return result{err: verify(password, encoded)}
	})
	if err != nil {
		return err
	}
	return res.err
}

func (h *Hasher) submit(ctx context.Context, run func() result) (result, error) {
	j := job{run: run, done: make(chan result, 1)}

	select {
	case h.jobs <- j:
	case <-ctx.Done():
		return result{}, ctx.Err()
	}

	select {
	case res := <-j.done:
		return res, nil
	case <-ctx.Done():
		// The worker will still finish the job; the buffered channel lets
		// its send complete without leaking the goroutine.
		return result{}, ctx.Err()
	}
}
