package debugui

import (
	"github.com/plus3/starward/engine"
)

type ObjectBrowser struct {
	cache          *objectBrowserCache
	selectedHandle engine.Handle
	filterText     string
	maxRowsPerPage int
	currentPage    int
}

type PropertyInspector struct {
	selectedHandle engine.Handle
}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
