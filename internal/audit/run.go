package audit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/fsaudit/internal/logger"
)

// ErrNotDirectory is returned when the audit root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// walkError handles an entry fastwalk could not read. The error is returned
// wrapped unless skip is set, in which case it is logged and, for a
// directory, counted as skipped.
//
// fastwalk reports a failed ReadDir in a second callback for the directory,
// where SkipDir is returned as the walk error, so skipping returns nil.
func (c *collector) walkError(path string, d fs.DirEntry, err error, skip bool) error {
	if !skip {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	logger.Warnf("skipping unreadable entry %s: %v", path, err)

	if d != nil && d.IsDir() {
		c.addSkippedDir()
	}

	return nil
}

// Run audits the tree at opt.Path and returns the classified files.
//
// Directories named in ExcludedDirs are skipped before they are read. Every
// other non-directory entry is grouped by base name, size-checked against
// opt.MaxFileSizeMB and matched against the suspicious naming rules.
//
// A file whose size cannot be read is logged and left out of the size check
// only. A directory that cannot be read aborts the run unless
// opt.SkipUnreadable is set. The walk can be cancelled via ctx, and progress
// updates are sent to progressHook if provided.
//
//nolint:gocognit,funlen,cyclop // Walk callback covers every entry kind.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	if opt.Path == "" {
		return nil, errors.New("no root path given")
	}

	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotDirectory)
	}

	if opt.Workers <= 0 {
		opt.Workers = 1
	}

	logger.Debugf("auditing %s (threshold %.2f MB, workers %d, skip unreadable %t)",
		opt.Path, opt.MaxFileSizeMB, opt.Workers, opt.SkipUnreadable)

	collector := newCollector(opt.DedupeSuspicious)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
		Sort:       fastwalk.SortLexical,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return collector.walkError(path, d, err, opt.SkipUnreadable)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path != opt.Path && isExcludedDir(d.Name()) {
				logger.Debugf("skipping excluded directory: %s", path)

				return fastwalk.SkipDir
			}

			return nil
		}

		// Symlinks are not followed: one that resolves to a directory is
		// neither walked nor counted as a file.
		if d.Type()&fs.ModeSymlink != 0 {
			if target, statErr := os.Stat(path); statErr == nil && target.IsDir() {
				logger.Debugf("skipping symlinked directory: %s", path)

				return nil
			}
		}

		name := d.Name()
		collector.addName(name, path)

		info, statErr := os.Stat(path)
		if statErr != nil {
			logger.Warnf("could not get size for %s: %v", path, statErr)
			collector.addSizeError()
		} else {
			collector.addSize(path, info.Size(), opt.MaxFileSizeMB)
		}

		collector.addSuspicious(path, suspiciousReasons(name))

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize()
	result.Elapsed = time.Since(start)

	logger.Debugf("audited %d files (%s) in %v", result.FilesScanned,
		humanize.IBytes(uint64(result.TotalBytes)), result.Elapsed) //nolint:gosec // Bytes is always positive

	return result, nil
}
