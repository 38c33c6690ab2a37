package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/castore/internal/logging"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewDefault("castore", "warn", &buf)

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("record failed validation", map[string]interface{}{"type": "mark", "error": "missing x"})
	logger.Error("finding mark types needs a slide", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "castore: record failed validation")
	assert.Contains(t, out, "error=\"missing x\" type=mark")
	assert.Contains(t, out, "[ERROR]")
}

func TestLogger_Nil(t *testing.T) {
	t.Parallel()

	logger := logging.New(nil)
	assert.NotNil(t, logger.HCLog())

	assert.NotPanics(t, func() {
		logger.Info("ignored", map[string]interface{}{"k": "v"})
	})
}

func TestLogger_ImplementsStoreLogger(t *testing.T) {
	t.Parallel()

	var _ castore.Logger = logging.New(nil)
}
