package teamwork

import (
	"io"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// hclogAdapter bridges Logger onto an hclog.Logger.
type hclogAdapter struct {
	logger hclog.Logger
}

// NewHCLogger wraps an hclog.Logger. A nil logger discards everything.
func NewHCLogger(logger hclog.Logger) Logger {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &hclogAdapter{logger: logger}
}

// NewLogger builds an hclog-backed Logger writing to output at the given
// level ("trace", "debug", "info", "warn", "error").
func NewLogger(name, level string, output io.Writer) Logger {
	return NewHCLogger(hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: output,
	}))
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, pairs(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, pairs(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, pairs(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, pairs(fields)...)
}

// pairs flattens fields into hclog's key/value arguments in a stable order.
func pairs(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}
