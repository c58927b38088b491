package lazyevents

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)
	child := base.WithField("b", 2).WithField("a", 1)

	child.Infof("hello %s", "world")
	base.Warnln("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO [a=1, b=2]: hello world")
	assert.Contains(t, lines[1], "WARN: plain")
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	assert.NotPanics(t, func() {
		l.WithField("k", "v").Errorf("ignored %d", 1)
	})
}

func TestLogrusLogger(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	emitter := New(WithLogger(NewLogrusLogger(base)))
	emitter.Emit("event")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, `created label "event"`, entry.Message)
	assert.Equal(t, "lazy_events", entry.Data["type"])
}

func TestLogrusLoggerNilFallsBack(t *testing.T) {
	l := NewLogrusLogger(nil)
	assert.NotNil(t, l.WithField("k", "v"))
}
