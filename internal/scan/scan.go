package scan

import (
	"fmt"
	"os"
)

// Error wraps a failure to open, read or close a directory. Any scan error is
// fatal for the run.
type Error struct {
	Path string
	Op   string // "open", "read", "close"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s directory %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ListEntries returns the names of the immediate entries of path, without
// "." and "..". Order is whatever the directory enumeration yields.
func ListEntries(path string) (names []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			names = nil
			err = &Error{Path: path, Op: "close", Err: cerr}
		}
	}()

	raw, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &Error{Path: path, Op: "read", Err: err}
	}

	names = make([]string, 0, len(raw))
	for _, name := range raw {
		if name == "." || name == ".." {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
