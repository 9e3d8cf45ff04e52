package audit

import (
	"slices"
	"strings"
)

// ExcludedDirs are directory names that are never descended into.
//
//nolint:gochecknoglobals // Config constant
var ExcludedDirs = []string{".git", "node_modules"}

// SuspiciousSuffixes are name endings typical of backup and temporary files.
//
//nolint:gochecknoglobals // Config constant
var SuspiciousSuffixes = []string{"~", ".bak", ".old", ".tmp"}

// HiddenException is the one hidden file name that is not suspicious.
const HiddenException = ".env"

// Reason tells why a file name was flagged.
type Reason string

const (
	// ReasonSuffix marks a backup or temporary suffix match.
	ReasonSuffix Reason = "suffix"
	// ReasonHidden marks a leading-dot name.
	ReasonHidden Reason = "hidden"
)

// isExcludedDir reports whether a directory with this exact name is skipped.
func isExcludedDir(name string) bool {
	return slices.Contains(ExcludedDirs, name)
}

// suspiciousReasons returns every rule the name matches, in rule order.
// A name can match both rules.
func suspiciousReasons(name string) []Reason {
	var reasons []Reason

	for _, suffix := range SuspiciousSuffixes {
		if strings.HasSuffix(name, suffix) {
			reasons = append(reasons, ReasonSuffix)

			break
		}
	}

	if strings.HasPrefix(name, ".") && name != HiddenException {
		reasons = append(reasons, ReasonHidden)
	}

	return reasons
}

// ToMB converts a byte count to mebibytes.
func ToMB(size int64) float64 {
	return float64(size) / BytesPerMB
}
