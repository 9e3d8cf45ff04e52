// Package audit walks a directory tree and classifies the files it finds.
//
// A single pass over the tree groups files by base name to find duplicate
// names, flags files above a size threshold, and flags names that look like
// temporary, backup or hidden files. Version-control metadata and dependency
// caches are never entered.
package audit
