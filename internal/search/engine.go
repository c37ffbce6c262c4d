package search

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	apperrors "github.com/computerscienceiscool/bigly/internal/errors"
)

const (
	// skippedDirName is the build-artifact directory never searched
	skippedDirName = "target"

	// maxLineSize bounds a single line; longer lines abort the file
	maxLineSize = 10 * 1024 * 1024
)

// Engine greps files for a literal term and writes each matching line to
// its output as path:line:content.
type Engine struct {
	fs   afero.Fs
	out  io.Writer
	root string
}

// NewEngine creates a search engine reading from fs and writing matches to
// out. Directory searches start at root, or "." when root is empty.
func NewEngine(fs afero.Fs, out io.Writer, root string) *Engine {
	if root == "" {
		root = "."
	}
	return &Engine{
		fs:   fs,
		out:  out,
		root: root,
	}
}

// Search greps a single file when target is set, otherwise the whole tree
// under the engine root
func (e *Engine) Search(term, target string) error {
	if target != "" {
		return e.SearchInFile(term, target)
	}
	return e.SearchInDirectory(term, e.root)
}

// SearchInFile writes every line of path containing term. Matches are
// written as they are found, so output from before a read error remains.
func (e *Engine) SearchInFile(term, path string) error {
	file, err := e.fs.Open(path)
	if err != nil {
		return &apperrors.IoError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return &apperrors.IoError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return &apperrors.IoError{Op: "open", Path: path, Err: apperrors.ErrIsDirectory}
	}

	reader := bufio.NewReaderSize(file, textSampleSize)
	sample, err := reader.Peek(textSampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return &apperrors.IoError{Op: "read", Path: path, Err: err}
	}
	if !isText(sample) {
		return &apperrors.IoError{Op: "read", Path: path, Err: apperrors.ErrBinaryFile}
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if !strings.Contains(line, term) {
			continue
		}
		if _, err := fmt.Fprintf(e.out, "%s:%d:%s\n", path, lineNumber, line); err != nil {
			return &apperrors.IoError{Op: "write", Path: path, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return &apperrors.IoError{Op: "read", Path: path, Err: err}
	}

	return nil
}

// SearchInDirectory walks dir depth-first. Hidden entries and target
// directories are skipped. A file that cannot be searched is skipped;
// a subdirectory that cannot be walked aborts the whole walk.
//
// Paths are cleaned with filepath.Join, so a walk from "." reports
// sub/x.txt rather than ./sub/x.txt.
func (e *Engine) SearchInDirectory(term, dir string) error {
	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return &apperrors.IoError{Op: "list", Path: dir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)

		// Follow symlinks so links to files and directories are searched
		info, err := e.fs.Stat(path)
		if err != nil {
			slog.Debug("skipping unreadable entry", "path", path, "error", err)
			continue
		}

		switch {
		case info.Mode().IsRegular():
			if err := e.SearchInFile(term, path); err != nil {
				slog.Debug("skipping file", "path", path, "error", err)
			}
		case info.IsDir():
			if name == skippedDirName {
				continue
			}
			if err := e.SearchInDirectory(term, path); err != nil {
				return err
			}
		}
	}

	return nil
}
