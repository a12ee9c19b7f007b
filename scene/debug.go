package scene

import "time"

// debugStats holds per-frame timing and draw counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime  time.Duration
	drawn     int
	visited   int
	skipAlpha int
	tweens    int
}

// debugLog reports frame stats through the scene logger at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"draw", stats.drawTime,
		"drawn", stats.drawn,
		"visited", stats.visited,
		"transparent", stats.skipAlpha,
		"tweens", stats.tweens,
	)
}

// Stats returns the draw count and number of running tweens from the last
// debug-mode frame.
func (s *Scene) Stats() (drawn, tweens int) {
	return s.lastStats.drawn, s.lastStats.tweens
}
