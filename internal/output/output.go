// Package output serializes extracted cases to JSON and delivers the payload
// to a file and to stdout.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"vkcases/internal/cases"
)

// jsonAPI keeps HTML escaping off so Cyrillic titles and literal ampersands
// in URLs survive untouched in the output.
var jsonAPI = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    false,
}.Froze()

// Marshal renders the cases as a human-readable JSON array with a trailing
// newline. An empty slice renders as [], never null.
func Marshal(records []cases.Case) ([]byte, error) {
	if records == nil {
		records = []cases.Case{}
	}
	b, err := jsonAPI.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal cases: %w", err)
	}
	return append(b, '\n'), nil
}

// Write stores the payload at path and mirrors the same bytes to w (stdout in
// the CLI). The file is written first so a broken pipe cannot lose the run.
func Write(records []cases.Case, path string, w io.Writer) error {
	payload, err := Marshal(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("mirror to stdout: %w", err)
	}
	return nil
}
