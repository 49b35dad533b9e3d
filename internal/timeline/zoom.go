package timeline

// Zoom bounds for the timeline view, in percent of the container width.
const (
	MinZoom     = 50
	MaxZoom     = 200
	DefaultZoom = 100
	ZoomStep    = 10
)

// StepZoom moves level by delta steps of ZoomStep and clamps the result to
// [MinZoom, MaxZoom]. The zoom level itself is owned by the caller.
func StepZoom(level, delta int) int {
	steps := (MaxZoom - MinZoom) / ZoomStep
	delta = min(max(delta, -steps), steps)
	return ClampZoom(ClampZoom(level) + delta*ZoomStep)
}

// ClampZoom restricts level to [MinZoom, MaxZoom].
func ClampZoom(level int) int {
	return min(max(level, MinZoom), MaxZoom)
}
