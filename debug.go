package armature

import (
	"log/slog"
	"time"
)

// renderStats holds per-frame draw metrics. Only reported when
// Renderer.Debug is true.
type renderStats struct {
	gridDraws    int
	meshDraws    int
	outlineDrawn bool
	total        time.Duration
}

// logStats reports frame metrics at debug level.
func (r *Renderer) logStats(stats renderStats) {
	if !r.Debug {
		return
	}
	slog.Debug("frame",
		"grid", stats.gridDraws,
		"meshes", stats.meshDraws,
		"outline", stats.outlineDrawn,
		"total", stats.total,
	)
}
