package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"info", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := newLogger(buf, tt.verbose)
			log.Debug("debug line")
			log.Info("info line")
			_ = log.Sync()

			assert.Contains(t, buf.String(), "info line")
			if tt.wantDebug {
				assert.Contains(t, buf.String(), "debug line")
			} else {
				assert.NotContains(t, buf.String(), "debug line")
			}
		})
	}
}

func TestRootOptionsLoggerDefaultsToNop(t *testing.T) {
	opts := &RootOptions{}
	assert.NotNil(t, opts.logger())
}
