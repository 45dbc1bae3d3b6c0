package runner

import "golang.org/x/sys/unix"

// dirID identifies a directory independently of the path used to reach it.
type dirID struct {
	Dev uint64
	Ino uint64
}

func identify(path string) (dirID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return dirID{}, err
	}
	return dirID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil
}
