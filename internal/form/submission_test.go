package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmission_Success(t *testing.T) {
	var s Submission
	assert.Equal(t, Idle, s.Phase())

	err := s.Run(context.Background(), func(context.Context) error {
		assert.Equal(t, Submitting, s.Phase())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, Succeeded, s.Phase())
}

func TestSubmission_FailureClearsLoading(t *testing.T) {
	var s Submission
	boom := errors.New("boom")

	err := s.Run(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Failed, s.Phase())
	assert.Equal(t, "failed", s.Phase().String())
}

func TestSubmission_PanicMarksFailed(t *testing.T) {
	var s Submission

	assert.Panics(t, func() {
		_ = s.Run(context.Background(), func(context.Context) error { panic("bad") })
	})
	assert.Equal(t, Failed, s.Phase())
}

func TestSubmission_RejectsConcurrentRun(t *testing.T) {
	var s Submission
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)

	go func() {
		done <- s.Run(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := s.Run(context.Background(), func(context.Context) error {
		t.Fatal("second run must not execute")
		return nil
	})
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, Submitting, s.Phase())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, Succeeded, s.Phase())
}
