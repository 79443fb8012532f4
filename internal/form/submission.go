// Package form tracks the lifecycle of a single form submission.
package form

import (
	"context"
	"errors"
	"sync"
)

// Phase is where a submission currently is.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrInFlight is returned by Run while a previous call is still submitting.
var ErrInFlight = errors.New("form: submission already in flight")

// Submission records the phase of one submit. Submitting is the loading
// state: it is entered before the action runs and always left when it
// returns, even on panic.
//
// Handlers and commands own a fresh Submission per request, so the view
// always starts Idle and "New Test" is simply a render of the zero value.
// Double submits from the browser are blocked by hx-disabled-elt; the
// ErrInFlight guard only matters for callers sharing one Submission.
type Submission struct {
	mu    sync.Mutex
	phase Phase
}

// Run executes fn unless a submission is already in flight.
func (s *Submission) Run(ctx context.Context, fn func(context.Context) error) error {
	s.mu.Lock()
	if s.phase == Submitting {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.phase = Submitting
	s.mu.Unlock()

	var (
		err      error
		returned bool
	)
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if returned && err == nil {
			s.phase = Succeeded
		} else {
			s.phase = Failed
		}
	}()

	err = fn(ctx)
	returned = true
	return err
}

// Phase returns the current phase.
func (s *Submission) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}
