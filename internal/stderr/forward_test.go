package stderr

import (
	"context"
	"testing"
	"testing/synctest"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_LogsLinesUntilClosed(t *testing.T) {
	logger, hook := test.NewNullLogger()
	lines := make(chan string, 2)
	lines <- "ALSA lib pcm.c:8526: underrun occurred"
	lines <- "second"
	close(lines)

	err := Forward(context.Background(), lines, logger)

	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 2)
	entry := hook.AllEntries()[0]
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "ALSA lib pcm.c:8526: underrun occurred", entry.Message)
	assert.Equal(t, "stderr", entry.Data["source"])
}

func TestForward_StopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		ctx, cancel := context.WithCancel(context.Background())
		lines := make(chan string)
		done := make(chan error)

		go func() { done <- Forward(ctx, lines, logger) }()
		lines <- "captured"
		cancel()

		require.NoError(t, <-done)
		assert.Len(t, hook.AllEntries(), 1)
	})
}
