package precheck

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var (
	ErrNotDir         = errors.New("not a directory")
	ErrNotReadable    = errors.New("not readable")
	ErrNotTraversable = errors.New("not traversable")
)

// Error reports which check failed for which path.
type Error struct {
	Path string
	Kind error // one of ErrNotDir, ErrNotReadable, ErrNotTraversable
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// Check verifies that path is a directory the current process may list and
// descend into. Checks run in order and stop at the first failure: directory,
// readable, traversable.
//
// A passing check does not guarantee a later open succeeds; permissions may
// change in between.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &Error{Path: path, Kind: ErrNotDir, Err: err}
	}
	if !info.IsDir() {
		return &Error{Path: path, Kind: ErrNotDir}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return &Error{Path: path, Kind: ErrNotReadable, Err: err}
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return &Error{Path: path, Kind: ErrNotTraversable, Err: err}
	}
	return nil
}

// CheckAll runs Check over paths in order and returns the first failure.
func CheckAll(paths []string) error {
	for _, p := range paths {
		if err := Check(p); err != nil {
			return err
		}
	}
	return nil
}
