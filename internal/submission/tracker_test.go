package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_StartsIdle(t *testing.T) {
	tr := NewTracker[string]()
	snap := tr.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Pending())
}

func TestTracker_BeginFinish(t *testing.T) {
	tr := NewTracker[int]()

	token := tr.Begin()
	assert.True(t, tr.Snapshot().Pending())

	assert.True(t, tr.Finish(token, 42, nil))
	snap := tr.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.Equal(t, 42, snap.Value)
	assert.NoError(t, snap.Err)
}

func TestTracker_FinishWithError(t *testing.T) {
	tr := NewTracker[int]()
	boom := errors.New("boom")

	token := tr.Begin()
	assert.True(t, tr.Finish(token, 7, boom))

	snap := tr.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Equal(t, 0, snap.Value)
	assert.ErrorIs(t, snap.Err, boom)
}

func TestTracker_StaleTokenIgnored(t *testing.T) {
	tr := NewTracker[string]()

	first := tr.Begin()
	second := tr.Begin()

	assert.False(t, tr.Finish(first, "old", nil))
	assert.True(t, tr.Snapshot().Pending())

	assert.True(t, tr.Finish(second, "new", nil))
	assert.Equal(t, "new", tr.Snapshot().Value)
}

func TestTracker_FinishTwiceIgnored(t *testing.T) {
	tr := NewTracker[string]()

	token := tr.Begin()
	require.True(t, tr.Finish(token, "first", nil))
	assert.False(t, tr.Finish(token, "second", nil))
	assert.Equal(t, "first", tr.Snapshot().Value)
}

func TestTracker_RunSupersededIsCancelled(t *testing.T) {
	tr := NewTracker[string]()
	started := make(chan struct{})
	done := make(chan struct{})

	var (
		applied bool
		runErr  error
	)
	go func() {
		defer close(done)
		_, applied, runErr = tr.Run(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		})
	}()

	<-started
	_, ok, err := tr.Run(context.Background(), func(context.Context) (string, error) {
		return "latest", nil
	})
	require.NoError(t, err)
	assert.True(t, ok)

	<-done
	assert.False(t, applied)
	assert.ErrorIs(t, runErr, context.Canceled)

	snap := tr.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.Equal(t, "latest", snap.Value)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker[int]()

	token := tr.Begin()
	tr.Reset()

	assert.Equal(t, StateIdle, tr.Snapshot().State)
	assert.False(t, tr.Finish(token, 1, nil))
	assert.Equal(t, StateIdle, tr.Snapshot().State)
}
