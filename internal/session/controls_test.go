package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderControls_NoToggleBeforeReady(t *testing.T) {
	s := New(testLabels, 0)
	s.Begin(true)

	c := RenderControls(s)

	assert.Nil(t, c.Toggle)
	assert.Equal(t, "BBC WS", c.Title)
	assert.Equal(t, s.Status(), c.Status)
	assert.Equal(t, []Action{{Key: KeyExit, Kind: ActionExit, Label: "Exit"}}, c.Actions())
}

func TestRenderControls_FollowsToggle(t *testing.T) {
	s := readySession(t)

	c := RenderControls(s)
	require.NotNil(t, c.Toggle)
	assert.Equal(t, ActionPlay, c.Toggle.Kind)
	assert.Equal(t, "Play", c.Toggle.Label)
	assert.Equal(t, "00:00", c.Status)

	s.Toggle()
	c = RenderControls(s)
	require.NotNil(t, c.Toggle)
	assert.Equal(t, ActionPause, c.Toggle.Kind)
	assert.Equal(t, "Pause", c.Toggle.Label)
	assert.Equal(t, []string{KeyToggle, KeyExit}, []string{c.Actions()[0].Key, c.Actions()[1].Key})

	s.Toggle()
	c = RenderControls(s)
	require.NotNil(t, c.Toggle)
	assert.Equal(t, ActionPlay, c.Toggle.Kind)
}

func TestRenderControls_Failed(t *testing.T) {
	s := New(testLabels, 0)
	s.Begin(true)
	s.MarkFailed(nil)

	c := RenderControls(s)

	assert.True(t, c.Failed)
	assert.Nil(t, c.Toggle)
	assert.Equal(t, testLabels.Error, c.Status)
}

func TestPublished(t *testing.T) {
	var p Published
	assert.Equal(t, Idle, p.Load().State)

	s := readySession(t)
	s.Toggle()
	p.Store(s.Snapshot())

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := p.Load()
			assert.Equal(t, Playing, snap.State)
			assert.Equal(t, "BBC WS", snap.Title)
		}()
	}
	wg.Wait()
}
