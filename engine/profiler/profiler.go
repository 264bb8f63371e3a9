package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks interaction statistics for the event-driven demo: how many
// redraws, marker drags, and resets occurred per logging interval, plus heap
// usage. Because frames are only drawn in response to input, a low redraw count
// is the healthy signal here, not a high frame rate.
type Profiler struct {
	redrawCount    int
	dragCount      int
	resetCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// RecordDrag should be called once per applied marker drag event.
func (p *Profiler) RecordDrag() {
	p.dragCount++
}

// RecordReset should be called once per marker layout reset.
func (p *Profiler) RecordReset() {
	p.resetCount++
}

// RecordRedraw should be called once per drawn frame.
// Logs the accumulated statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged, false otherwise
func (p *Profiler) RecordRedraw() bool {
	p.redrawCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		log.Printf("[Profiler] Redraws: %d | Drags: %d | Resets: %d | Heap: %.2f MB | Sys: %.2f MB (over %.2fs)",
			p.redrawCount, p.dragCount, p.resetCount, allocMB, sysMB, elapsed.Seconds())

		p.redrawCount = 0
		p.dragCount = 0
		p.resetCount = 0
		p.lastTime = currentTime
		return true
	}

	return false
}
