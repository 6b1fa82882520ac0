package pipeline

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/subrename/internal/audit"
)

// Snapshot lists the names of dir's direct children of the given kind,
// sorted lexicographically. The list is fixed at call time, so renames made
// while iterating it cannot change which entries are visited.
//
// Symlinks are classified by their target; dangling links and special files
// (sockets, pipes, devices) belong to neither kind.
func Snapshot(fs afero.Fs, dir string, kind audit.Kind) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, fi := range infos {
		if fi.Mode()&os.ModeSymlink != 0 {
			resolved, err := fs.Stat(filepath.Join(dir, fi.Name()))
			if err != nil {
				continue
			}
			fi = resolved
		}
		if isKind(fi, kind) {
			names = append(names, fi.Name())
		}
	}
	return names, nil
}

func isKind(fi os.FileInfo, kind audit.Kind) bool {
	if kind == audit.KindDir {
		return fi.IsDir()
	}
	return fi.Mode().IsRegular()
}
