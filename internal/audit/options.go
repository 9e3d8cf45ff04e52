package audit

import "time"

// DefaultMaxFileSizeMB is the large-file threshold in mebibytes.
const DefaultMaxFileSizeMB = 5.0

// BytesPerMB converts byte counts to the MB figures used in reports.
const BytesPerMB = 1024 * 1024

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures an audit run.
type Options struct {
	// Path is the root directory to audit.
	Path string
	// MaxFileSizeMB is the threshold above which a file is reported as large.
	MaxFileSizeMB float64
	// SkipUnreadable logs and skips directories that cannot be read instead
	// of aborting the run.
	SkipUnreadable bool
	// DedupeSuspicious reports a file once even when it matches both the
	// suffix and the hidden-name rule.
	DedupeSuspicious bool
	// Workers is the number of fastwalk workers (0 = 1).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Path:          ".",
		MaxFileSizeMB: DefaultMaxFileSizeMB,
		Workers:       1,
	}
}
