package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunNow(t *testing.T) {
	// Given
	var logs bytes.Buffer
	s := New(zerolog.New(&logs), time.Second)
	var gotDeadline bool
	job := NewJob("refresh", func(ctx context.Context) error {
		_, gotDeadline = ctx.Deadline()
		return nil
	})

	// When
	err := s.RunNow(job)

	// Then
	require.NoError(t, err)
	assert.True(t, gotDeadline)
}

func TestScheduler_RunNow_LogsFailure(t *testing.T) {
	var logs bytes.Buffer
	s := New(zerolog.New(&logs), 0)
	boom := errors.New("boom")

	err := s.RunNow(NewJob("refresh", func(context.Context) error { return boom }))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, logs.String(), `"job":"refresh"`)
	assert.Contains(t, logs.String(), "job failed")
}

func TestScheduler_AddJob_RejectsBadSchedule(t *testing.T) {
	s := New(zerolog.Nop(), 0)

	err := s.AddJob("not a schedule", NewJob("refresh", func(context.Context) error { return nil }))

	assert.Error(t, err)
}

func TestScheduler_AddJob_RunsOnSchedule(t *testing.T) {
	// Given
	s := New(zerolog.Nop(), 0)
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("@every 1s", NewJob("tick", func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})))

	// When
	s.Start()
	defer s.Stop()

	// Then
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
