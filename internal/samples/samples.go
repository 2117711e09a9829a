// Package samples handles the directory of JSON documents: listing,
// interactive selection, and persistence of renamed copies.
package samples

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dlcarv/keycomp/internal/errors"
	"github.com/dlcarv/keycomp/internal/models"
)

// FindDir resolves the samples directory. A non-empty override is used
// as-is; otherwise "samples" under the working directory. The directory
// is created when it does not exist yet.
func FindDir(override string) (string, error) {
	dir := override
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.NewInputError("failed to determine working directory", err)
		}
		dir = filepath.Join(cwd, "samples")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewInputError(
			fmt.Sprintf("failed to create samples directory '%s'", dir),
			err,
		)
	}
	return dir, nil
}

// ListJSON returns the names of the *.json files in dir, sorted.
func ListJSON(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read samples directory '%s'", dir),
			err,
		)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve turns a user-supplied file name into a path: absolute names
// pass through, relative names are joined to the samples directory.
func Resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Choose lists the JSON files in dir on w and reads a selection from r,
// accepting either the listed number or a literal file name. Invalid
// input reprompts; running out of input is a selection error.
func Choose(r io.Reader, w io.Writer, prompt, dir string) (string, error) {
	files, err := ListJSON(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.NewSelectionError(
			fmt.Sprintf("no JSON files found in %s", dir),
			errors.ErrNoSamples,
		)
	}

	fmt.Fprintf(w, "\nJSON files in %s:\n", dir)
	for i, f := range files {
		fmt.Fprintf(w, "  %d. %s\n", i+1, f)
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", errors.NewSelectionError("failed to read selection", err)
			}
			return "", errors.NewSelectionError("no selection made", errors.ErrInvalidChoice)
		}
		choice := strings.TrimSpace(scanner.Text())

		if idx, err := strconv.Atoi(choice); err == nil {
			if idx >= 1 && idx <= len(files) {
				return filepath.Join(dir, files[idx-1]), nil
			}
		} else if choice != "" {
			candidate := filepath.Join(dir, choice)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		fmt.Fprintln(w, "Invalid choice. Enter the listed number or the file name as shown.")
	}
}

// MappedPath derives the name a renamed copy of path is saved under:
// "_mapped" inserted before the extension, defaulting to ".json" when
// the original has none.
func MappedPath(path string) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	name := strings.TrimSuffix(file, ext)
	if ext == "" {
		ext = ".json"
	}
	return filepath.Join(dir, name+"_mapped"+ext)
}

// Save persists a document as two-space-indented JSON with a trailing
// newline. Non-ASCII text is written verbatim, not escaped.
func Save(path string, doc models.Document) error {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc.Root); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to encode JSON for '%s'", path),
			err,
		)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to write file '%s'", path),
			err,
		)
	}
	return nil
}
