package stream

// An Animation implements a way to render a specific animation for a
// point in the stream's runtime.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
