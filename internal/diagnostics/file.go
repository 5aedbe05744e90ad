package diagnostics

import (
	"context"
	"fmt"
	"os"
	"sync"
)

const fileTimeLayout = "2006-01-02 15:04:05 MST"

// FileSink appends one line per entry: "[time] event data".
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Write(_ context.Context, e Entry) error {
	line := fmt.Sprintf("[%s] %s %s\n", e.Time.Format(fileTimeLayout), e.Event, e.Data)
	if e.CorrelationID != "" {
		line = fmt.Sprintf("[%s] %s correlation_id=%s %s\n", e.Time.Format(fileTimeLayout), e.Event, e.CorrelationID, e.Data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open diagnostic log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write diagnostic log: %w", err)
	}
	return nil
}
