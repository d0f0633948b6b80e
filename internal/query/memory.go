package query

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/katalvlaran/lvsteiner/bitmask"
	"github.com/katalvlaran/lvsteiner/internal/ingest"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// ErrTableTooLarge means a case's cost table would not fit the memory limit.
var ErrTableTooLarge = errors.New("query: cost table exceeds memory limit")

// AvailableMemory reports how many bytes the host can hand out without
// swapping.
func AvailableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, errors.Wrap(err, "query: probe memory")
	}

	return vm.Available, nil
}

// WithMemoryLimit rejects cases whose tables need more than limit bytes.
// Zero disables the fixed limit.
func WithMemoryLimit(limit uint64) Option {
	return func(r *Runner) { r.memLimit = limit }
}

// WithMemoryGuard caps tables at the host's available memory, probed once
// on the first case. A fixed WithMemoryLimit takes precedence.
func WithMemoryGuard(on bool) Option {
	return func(r *Runner) { r.memGuard = on }
}

// limit resolves the effective cap; 0 means unlimited.
func (r *Runner) limit() uint64 {
	if r.memLimit > 0 || !r.memGuard {
		return r.memLimit
	}
	if !r.probed {
		r.probed = true
		avail, err := AvailableMemory()
		if err != nil {
			r.logger.WithError(err).Warn("Memory guard disabled")
		} else {
			r.logger.WithField("available", avail).Debug("Memory guard armed")
		}
		r.available = avail
	}

	return r.available
}

// admit fails c when its tables exceed the limit. Cases with too many
// terminals are left to the solver, which reports them precisely.
func (r *Runner) admit(c *ingest.Case) error {
	k := len(c.Terminals)
	if k > bitmask.MaxTerminals {
		return nil
	}
	limit := r.limit()
	if need := steiner.TableBytes(c.Graph.Order(), k); limit > 0 && need > limit {
		return errors.Wrapf(ErrTableTooLarge, "case %d: %d nodes, %d terminals need %d bytes, limit %d",
			c.Index, c.Graph.Order(), k, need, limit)
	}

	return nil
}
