package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Clock *quartz.Mock
}

// New - builds the shared fixtures for game tests: a bounded context, a silent logger and a
// mock clock that only moves when the test advances it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	handler := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})

	return ctx, &Suite{
		T:      t,
		Logger: slog.New(handler),
		Clock:  quartz.NewMock(t),
	}
}
