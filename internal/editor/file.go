package editor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dshills/rune/internal/engine/buffer"
	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/vfs"
)

// ErrNoFilePath is returned by Save when neither an explicit path nor an
// associated path is available.
var ErrNoFilePath = errors.New("no file path specified")

// Open replaces the document with the contents of path. On success the
// path becomes associated, the cursor and scroll reset to the origin and
// history is cleared. On failure the editor is left untouched.
func (e *Editor) Open(path string) error {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		e.logger.WithField("path", path).Warn("open failed: %v", err)
		return fmt.Errorf("open %s: %w", path, err)
	}

	text := string(data)
	e.buf = buffer.NewBufferFromString(text)
	e.filePath = path
	e.cursor = cursor.Position{}
	e.scrollPos = cursor.Position{}
	e.history.Clear()

	e.logger.WithFields(map[string]any{
		"path":  path,
		"lines": e.buf.LineCount(),
		"eol":   e.buf.LineEnding(),
	}).Info("opened file")
	if buffer.MixedLineEndings(text) {
		e.logger.WithFields(map[string]any{
			"path": path,
			"eol":  e.buf.LineEnding(),
		}).Debug("mixed line endings; saving normalizes them")
	}
	return nil
}

// Save writes the document to path, or to the associated path when path
// is empty, and reports the outcome in the status message. A successful
// save associates the written path.
func (e *Editor) Save(path string) error {
	target := path
	if target == "" {
		target = e.filePath
	}
	if target == "" {
		e.status = "No file path specified"
		return ErrNoFilePath
	}

	var out bytes.Buffer
	if _, err := e.buf.WriteTo(&out); err != nil {
		e.status = fmt.Sprintf("Error saving: %v", err)
		return fmt.Errorf("save %s: %w", target, err)
	}
	if err := e.fs.WriteFile(target, out.Bytes(), vfs.DefaultFilePerm); err != nil {
		e.status = fmt.Sprintf("Error saving: %v", err)
		e.logger.WithField("path", target).Warn("save failed: %v", err)
		return fmt.Errorf("save %s: %w", target, err)
	}

	e.filePath = target
	e.status = "Saved to " + target
	e.logger.WithFields(map[string]any{"path": target, "bytes": out.Len()}).Info("saved file")
	return nil
}
