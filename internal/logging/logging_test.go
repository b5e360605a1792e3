package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/onair/internal/config"
)

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := logrus.New()
			Configure(l, &bytes.Buffer{}, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestConfigure_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, "info")

	l.WithField("state", "Preparing").Info("transition")

	assert.Contains(t, buf.String(), "state=Preparing")
	assert.Contains(t, buf.String(), "msg=transition")
}

func TestSetup_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "onair.log")
	prev := logrus.StandardLogger().Out
	t.Cleanup(func() { logrus.SetOutput(prev) })

	closer, err := Setup(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)

	logrus.Info("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
