package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// SplitName splits name into stem and suffix at the last dot. A leading dot
// (".bashrc") or a trailing dot ("notes.") does not start a suffix, so those
// names have an empty suffix.
func SplitName(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// IndexedName builds the k-th collision variant of name: "stem(k)suffix".
func IndexedName(name string, k int) string {
	stem, suffix := SplitName(name)
	return fmt.Sprintf("%s(%d)%s", stem, k, suffix)
}

// Exists reports whether anything occupies path. Symlinks are not followed,
// so a dangling link still counts as occupied.
func Exists(fs afero.Fs, path string) (bool, error) {
	var err error
	if ls, ok := fs.(afero.Lstater); ok {
		_, _, err = ls.LstatIfPossible(path)
	} else {
		_, err = fs.Stat(path)
	}
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// ResolveDestination returns the name to rename to inside dir. If name is
// vacant it is returned unchanged with collided=false. Otherwise the first
// vacant IndexedName(name, k), k = 1, 2, ..., is returned with collided=true.
// Indices already taken on disk are never reused.
func ResolveDestination(fs afero.Fs, dir, name string) (final string, collided bool, err error) {
	taken, err := Exists(fs, filepath.Join(dir, name))
	if err != nil {
		return "", false, err
	}
	if !taken {
		return name, false, nil
	}
	for k := 1; ; k++ {
		candidate := IndexedName(name, k)
		taken, err := Exists(fs, filepath.Join(dir, candidate))
		if err != nil {
			return "", true, err
		}
		if !taken {
			return candidate, true, nil
		}
	}
}
