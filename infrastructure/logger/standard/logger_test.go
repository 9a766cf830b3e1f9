package standard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardLogger_MessageOnly(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewStandardLoggerTo(&out, &errOut)

	l.Info("parsing started", nil)

	assert.Contains(t, out.String(), "[INFO] ")
	assert.Contains(t, out.String(), "parsing started")
	assert.Empty(t, errOut.String())
}

func TestStandardLogger_FieldsRenderedAsJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewStandardLoggerTo(&out, &errOut)

	l.Debug("Skipping unknown media child element", map[string]interface{}{
		"element": "peerLink",
	})

	assert.Contains(t, out.String(), "[DEBUG] ")
	assert.Contains(t, out.String(), `{"element":"peerLink"}`)
}

func TestStandardLogger_ErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewStandardLoggerTo(&out, &errOut)

	l.Error("encode failed", nil)

	assert.Empty(t, out.String())
	assert.True(t, strings.Contains(errOut.String(), "[ERROR] encode failed"))
}

func TestStandardLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewStandardLoggerTo(&out, &errOut)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)

	assert.Contains(t, out.String(), "[DEBUG] d")
	assert.Contains(t, out.String(), "[INFO] i")
	assert.Contains(t, out.String(), "[WARN] w")
}
