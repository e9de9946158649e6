package drc

// Reporter is the injected capability the engine reports progress and
// status through, replacing the global singleton / signal-dispatch
// pattern spec.md §9 calls out for re-architecture. A nil Reporter is
// valid: every call site nil-checks before invoking it.
type Reporter interface {
	Status(text string)
	Progress(percent int)
}

// NopReporter discards every call; used where a caller has nothing to
// observe progress with.
type NopReporter struct{}

func (NopReporter) Status(string)  {}
func (NopReporter) Progress(int)   {}

// reportStatus and reportProgress nil-check r so engine code can call
// through an optional Reporter without a guard at every call site.
func reportStatus(r Reporter, text string) {
	if r != nil {
		r.Status(text)
	}
}

func reportProgress(r Reporter, percent int) {
	if r != nil {
		r.Progress(percent)
	}
}
