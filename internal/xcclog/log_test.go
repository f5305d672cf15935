package xcclog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maximaximal/xccsolve/internal/xcclog"
)

func TestDebugfSilentWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := xcclog.New(&buf, false, false)
	l.Debugf("hello %d", 1)
	assert.Empty(t, buf.String())
}

func TestDebugfWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := xcclog.New(&buf, true, false)
	l.Debugf("hello %d", 1)
	assert.True(t, strings.Contains(buf.String(), "hello 1"))
}

func TestTracefIndependentOfDebug(t *testing.T) {
	var buf bytes.Buffer
	l := xcclog.New(&buf, false, true)
	l.Debugf("should not appear")
	l.Tracef("should appear")
	out := buf.String()
	assert.False(t, strings.Contains(out, "should not appear"))
	assert.True(t, strings.Contains(out, "should appear"))
}

func TestSetVerbose(t *testing.T) {
	l := xcclog.New(&bytes.Buffer{}, false, false)
	l.SetVerbose(2)
	assert.Equal(t, 2, l.Verbose())
}
