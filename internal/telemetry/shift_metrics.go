package telemetry

import "sync/atomic"

// ShiftMetrics aggregates measurements of front-insertion and front-removal
// shifts, the only O(n) operations a fixed-capacity vector performs.
type ShiftMetrics struct {
	elementsMoved atomic.Uint64
	shifts        atomic.Uint64
	rejected      atomic.Uint64
}

var defaultShiftMetrics ShiftMetrics

// DefaultShiftMetrics returns the process-wide metrics aggregate.
func DefaultShiftMetrics() *ShiftMetrics {
	return &defaultShiftMetrics
}

// TraceShift starts a shift measurement and returns a completion function
// that reports how many elements were moved and whether the operation was
// rejected before shifting.
func TraceShift() func(moved int, err error) {
	return func(moved int, err error) {
		if err != nil {
			defaultShiftMetrics.rejected.Add(1)
			return
		}
		defaultShiftMetrics.shifts.Add(1)
		defaultShiftMetrics.elementsMoved.Add(uint64(moved))
	}
}

// Snapshot returns the collected values.
func (m *ShiftMetrics) Snapshot() (shifts uint64, rejected uint64, averageMoved float64) {
	shifts = m.shifts.Load()
	rejected = m.rejected.Load()
	moved := m.elementsMoved.Load()
	if shifts == 0 {
		return shifts, rejected, 0
	}
	averageMoved = float64(moved) / float64(shifts)
	return shifts, rejected, averageMoved
}

// Reset clears all counters.
func (m *ShiftMetrics) Reset() {
	m.elementsMoved.Store(0)
	m.shifts.Store(0)
	m.rejected.Store(0)
}
