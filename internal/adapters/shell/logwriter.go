package shell

import (
	"bytes"
	"strings"

	"go.trai.ch/prj/internal/core/ports"
)

type logLevel int

const (
	levelDebug logLevel = iota
	levelWarn
)

// logWriter forwards complete lines written by a child process to the logger.
type logWriter struct {
	logger ports.Logger
	level  logLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}

	if w.level == levelDebug {
		w.logger.Debug(msg)
	} else {
		w.logger.Warn(msg)
	}
}
