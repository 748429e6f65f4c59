package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfofAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Infof("translating %s", "Foo.vm")
	assert.Contains(t, buf.String(), "info: translating Foo.vm")
}

func TestDebugfSuppressedUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Debugf("parsed %d lines", 12)
	assert.Empty(t, buf.String())

	l.Verbose = true
	l.Debugf("parsed %d lines", 12)
	assert.Contains(t, buf.String(), "debug: parsed 12 lines")
}

func TestErrorfAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Errorf("bad line: %s", "pop constant 0")
	assert.Contains(t, buf.String(), "error: bad line: pop constant 0")
}
