package delivery

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// historyTimeFormat is the timestamp inside each history line.
const historyTimeFormat = "2006-01-02 15:04:05"

// AppendHistory adds one "[timestamp] text" line to the log. The file is
// opened in append mode and the line written in a single call, so
// concurrent external readers never see a partial entry.
func AppendHistory(path string, ts time.Time, text string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "[%s] %s\n", ts.Format(historyTimeFormat), text)
	return err
}

// Tail returns the last n history lines, oldest first. A missing log is
// an empty history, not an error.
func Tail(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
