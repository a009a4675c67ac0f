package logger_test

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"go.trai.ch/prosa/internal/adapters/logger"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBuffered() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		want  string
		level string
	}{
		{"info", func(l *logger.Logger) { l.Info("wrote build.xml") }, "wrote build.xml", "INFO"},
		{"warn", func(l *logger.Logger) { l.Warn("cannot restore conf") }, "cannot restore conf", "WARN"},
		{"error", func(l *logger.Logger) { l.Error(os.ErrPermission) }, "permission denied", "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newBuffered()
			tt.log(lg)

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected output to contain %q, got: %s", tt.want, out)
			}
			if !strings.Contains(out, "level="+tt.level) {
				t.Errorf("expected level %s, got: %s", tt.level, out)
			}
		})
	}
}

func TestLogger_ErrorIncludesMetadata(t *testing.T) {
	lg, buf := newBuffered()
	lg.Error(zerr.With(domain.ErrOutputModified, "path", "ant/build.xml"))

	out := buf.String()
	if !strings.Contains(out, "ant/build.xml") {
		t.Errorf("expected output to contain the path, got: %s", out)
	}
}

func TestLogger_ConcurrentSetOutput(t *testing.T) {
	lg, _ := newBuffered()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			lg.Info("message")
		}()
		go func() {
			defer wg.Done()
			lg.SetOutput(&bytes.Buffer{})
		}()
	}
	wg.Wait()
}

func TestNewNop(t *testing.T) {
	lg := logger.NewNop()
	if lg == nil {
		t.Fatal("expected NewNop() to return a non-nil logger")
	}
	lg.Info("ignored")
	lg.Warn("ignored")
	lg.Error(os.ErrNotExist)
}
