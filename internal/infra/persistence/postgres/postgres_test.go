package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Sample(t *testing.T) {
	tests := []struct {
		name      string
		next      sql.DBStats
		wantLevel string
		wantLog   bool
	}{
		{
			name:    "no waits",
			next:    sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog: false,
		},
		{
			name:      "short waits are debug",
			next:      sql.DBStats{WaitCount: 5, WaitDuration: 20 * time.Millisecond},
			wantLevel: "level=DEBUG",
			wantLog:   true,
		},
		{
			name:      "long waits are warnings",
			next:      sql.DBStats{WaitCount: 4, WaitDuration: 110 * time.Millisecond},
			wantLevel: "level=WARN",
			wantLog:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			next := tt.next
			monitor := newPoolMonitor(logger, func() sql.DBStats { return next })
			monitor.prev = sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

			monitor.sample(context.Background())

			if !tt.wantLog {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantLevel)
				assert.Contains(t, buf.String(), "Postgres pool wait")
			}
			assert.Equal(t, tt.next, monitor.prev)
		})
	}
}
