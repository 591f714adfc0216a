package optpack_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/AndrewDonelson/optpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_RoutesLevels(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := optpack.NewSlogLogger(slog.New(h))

	l.Debug("d", "k", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR", "optpack.k=1"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_UnmatchedWarning(t *testing.T) {
	var buf bytes.Buffer
	c, err := optpack.New(optpack.Config{
		Logger: optpack.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	})
	require.NoError(t, err)

	_, err = c.Encode(fourOptions(), optpack.NewSelection("value1", "unknown_option"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "unknown_option")
}

func TestNewSlogLogger_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, optpack.NewSlogLogger(nil))
}
