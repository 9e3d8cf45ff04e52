package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/fsaudit/internal/audit"
)

func TestPrintReport(t *testing.T) {
	result := &audit.Result{
		Duplicates: []audit.DuplicateGroup{
			{Name: "x.txt", Paths: []string{"/root/a/x.txt", "/root/b/x.txt"}},
		},
		LargeFiles: []audit.LargeFile{
			{Path: "/root/big.bin", SizeMB: 6},
			{Path: "/root/odd.bin", SizeMB: 5.127},
		},
		Suspicious: []audit.SuspiciousFile{
			{Path: "/root/.old.bak", Reason: audit.ReasonSuffix},
			{Path: "/root/.old.bak", Reason: audit.ReasonHidden},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintReport(result, 5, &buf, false))

	want := "\n" + heredoc.Doc(`
		=== Duplicate Files ===
		x.txt:
		  - /root/a/x.txt
		  - /root/b/x.txt

		=== Large Files (>5MB) ===
		/root/big.bin - 6.00 MB
		/root/odd.bin - 5.13 MB

		=== Suspicious File Names ===
		/root/.old.bak
		/root/.old.bak
	`)

	assert.Equal(t, want, buf.String())
}

func TestPrintReportEmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintReport(&audit.Result{}, 2.5, &buf, false))

	want := "\n=== Duplicate Files ===\n\n=== Large Files (>2.5MB) ===\n\n=== Suspicious File Names ===\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintReportWriteError(t *testing.T) {
	result := &audit.Result{
		Duplicates: []audit.DuplicateGroup{{Name: "x.txt", Paths: []string{"/a/x.txt", "/b/x.txt"}}},
		LargeFiles: []audit.LargeFile{{Path: "/big.bin", SizeMB: 6}},
	}

	err := PrintReport(result, 5, failingWriter{}, false)
	require.EqualError(t, err, "disk full")
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "5", formatThreshold(5))
	assert.Equal(t, "2.5", formatThreshold(2.5))
	assert.Equal(t, "4.77", formatThreshold(5_000_000.0/audit.BytesPerMB))
	assert.Equal(t, "0.48", formatThreshold(500*1000.0/audit.BytesPerMB))
}

func TestPrintReportColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintReport(&audit.Result{}, 5, &buf, true))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrintSummary(t *testing.T) {
	result := &audit.Result{
		FilesScanned: 3,
		TotalBytes:   2048,
		SizeErrors:   1,
		SkippedDirs:  2,
		Elapsed:      time.Second,
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(result, &buf))

	out := buf.String()
	assert.Contains(t, out, "Total files:")
	assert.Contains(t, out, "2.0 KiB (2048 bytes)")
	assert.Contains(t, out, "Size errors:")
	assert.Contains(t, out, "Skipped directories:")
	assert.Contains(t, out, "1s")
}
