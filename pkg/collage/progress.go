package collage

// ProgressSink receives the share of images placed so far, in percent.
// Report is called synchronously from the build loop and must return quickly.
type ProgressSink interface {
	Report(percent float64)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(percent float64)

// Report calls f(percent).
func (f ProgressFunc) Report(percent float64) {
	f(percent)
}

// NopProgress discards progress reports.
var NopProgress ProgressSink = ProgressFunc(func(float64) {})
