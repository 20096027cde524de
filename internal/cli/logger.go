package cli

import (
	"io"
	"log"
)

// streamLogger writes leveled engine messages to w.
type streamLogger struct {
	l *log.Logger
}

func newStreamLogger(w io.Writer) *streamLogger {
	return &streamLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *streamLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s *streamLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s *streamLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s *streamLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
