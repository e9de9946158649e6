// Package obs is the engine's internal logging seam: a thin wrapper over
// logrus used only for the per-check degenerate-feature skip lines spec.md
// §7 calls for ("skipped ... with an internal log line"). It is
// intentionally not exported outside the module — callers observe the
// engine through Reporter (drc/progress.go) and RunOutcome, never through
// log output.
package obs

import "github.com/sirupsen/logrus"

// Logger is the shape this package's functions need; *logrus.Logger and
// *logrus.Entry both satisfy it.
type Logger interface {
	WithFields(fields logrus.Fields) *logrus.Entry
}

// New returns a logrus.Logger configured the way the engine needs it:
// structured JSON fields, level driven by the caller (defaults to Info).
func New() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SkippedFeature logs a single degenerate feature skipped within a check,
// per spec.md §7: the run continues, but the skip is observable.
func SkippedFeature(log Logger, check, objectKind, objectUUID, reason string) {
	log.WithFields(logrus.Fields{
		"check":  check,
		"kind":   objectKind,
		"uuid":   objectUUID,
		"reason": reason,
	}).Warn("degenerate feature skipped")
}
