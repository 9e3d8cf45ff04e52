package audit

import (
	"sync"
	"time"
)

// DuplicateGroup is a base file name shared by two or more paths.
type DuplicateGroup struct {
	// Name is the shared base name.
	Name string
	// Paths lists every path with that name, in visitation order.
	Paths []string
}

// LargeFile is a file above the size threshold.
type LargeFile struct {
	// Path is the file path.
	Path string
	// SizeMB is the size in mebibytes.
	SizeMB float64
}

// SuspiciousFile is a file whose name matched one of the naming rules.
type SuspiciousFile struct {
	// Path is the file path.
	Path string
	// Reason is the rule that matched.
	Reason Reason
}

// Result holds the outcome of an audit run.
type Result struct {
	// Duplicates holds name groups with more than one path, in first-seen order.
	Duplicates []DuplicateGroup
	// LargeFiles holds files above the threshold, in visitation order.
	LargeFiles []LargeFile
	// Suspicious holds flagged names, in visitation order.
	Suspicious []SuspiciousFile
	// FilesScanned is the number of files visited.
	FilesScanned int64
	// TotalBytes is the cumulative size of every file whose size could be read.
	TotalBytes int64
	// SizeErrors is the number of files whose size could not be read.
	SizeErrors int64
	// SkippedDirs is the number of unreadable directories that were skipped.
	SkippedDirs int64
	// Elapsed is the total time taken.
	Elapsed time.Duration
}

// collector accumulates classifications from fastwalk callbacks using a mutex.
type collector struct {
	mu          sync.Mutex
	dedupe      bool
	groupIndex  map[string]int
	groups      []DuplicateGroup
	largeFiles  []LargeFile
	suspicious  []SuspiciousFile
	fileCount   int64
	totalBytes  int64
	sizeErrors  int64
	skippedDirs int64
}

func newCollector(dedupe bool) *collector {
	return &collector{
		dedupe:     dedupe,
		groupIndex: make(map[string]int),
	}
}

// addName records path under its base name.
func (c *collector) addName(name, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++

	idx, ok := c.groupIndex[name]
	if !ok {
		idx = len(c.groups)
		c.groupIndex[name] = idx
		c.groups = append(c.groups, DuplicateGroup{Name: name})
	}

	c.groups[idx].Paths = append(c.groups[idx].Paths, path)
}

// addSize records a readable size and flags it when above threshold.
func (c *collector) addSize(path string, size int64, threshold float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalBytes += size

	if sizeMB := ToMB(size); sizeMB > threshold {
		c.largeFiles = append(c.largeFiles, LargeFile{Path: path, SizeMB: sizeMB})
	}
}

// addSuspicious records one entry per matched rule, or one in total when deduping.
func (c *collector) addSuspicious(path string, reasons []Reason) {
	if len(reasons) == 0 {
		return
	}

	if c.dedupe {
		reasons = reasons[:1]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, reason := range reasons {
		c.suspicious = append(c.suspicious, SuspiciousFile{Path: path, Reason: reason})
	}
}

func (c *collector) addSizeError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sizeErrors++
}

func (c *collector) addSkippedDir() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skippedDirs++
}

// progress returns the running file and byte counters.
func (c *collector) progress() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize drops singleton name groups and produces the Result.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	duplicates := make([]DuplicateGroup, 0)

	for _, group := range c.groups {
		if len(group.Paths) > 1 {
			duplicates = append(duplicates, group)
		}
	}

	return &Result{
		Duplicates:   duplicates,
		LargeFiles:   c.largeFiles,
		Suspicious:   c.suspicious,
		FilesScanned: c.fileCount,
		TotalBytes:   c.totalBytes,
		SizeErrors:   c.sizeErrors,
		SkippedDirs:  c.skippedDirs,
	}
}
