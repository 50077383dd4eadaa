package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// OpenLogger creates the session logger for a CLI. An empty path discards
// everything; otherwise entries are appended to the file, which the
// returned closer releases.
func OpenLogger(path string, debug bool, prefix string) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		if path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("runlog: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("runlog: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("runlog: cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
