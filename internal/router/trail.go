package router

import (
	"context"
	"fmt"

	"support-router/pkg/log"
)

// trail collects the delegation steps of one query and mirrors each line to
// the structured logger.
type trail struct {
	ctx   context.Context
	l     log.Logger
	lines []string
}

func newTrail(ctx context.Context, l log.Logger) *trail {
	return &trail{ctx: ctx, l: l, lines: make([]string, 0, 8)}
}

func (t *trail) add(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	t.lines = append(t.lines, line)
	t.l.Debugf(t.ctx, "%s: %s", LogPrefixHandleQuery, line)
}

// snapshot returns a copy so later appends never alias a returned Result.
func (t *trail) snapshot() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}
