package teamwork_test

import (
	"bytes"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	logger := teamwork.NewLogger("teamwork", "info", &buffer)

	logger.Debug("hidden", nil)
	logger.Info("API Request", map[string]interface{}{"path": "projects.json", "method": "GET"})
	logger.Warn("slow", map[string]interface{}{"ms": 1200})
	logger.Error("failed", nil)

	output := buffer.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "teamwork: API Request: method=GET path=projects.json")
	assert.Contains(t, output, "[WARN]")
	assert.Contains(t, output, "ms=1200")
	assert.Contains(t, output, "[ERROR]")
}

func TestNewHCLogger_Nil(t *testing.T) {
	t.Parallel()

	logger := teamwork.NewHCLogger(nil)

	assert.NotPanics(t, func() {
		logger.Info("discarded", map[string]interface{}{"key": "value"})
	})
}
