package fsutil

import (
	"fmt"

	"github.com/luckydonald/copybara/fs"
)

// DeleteResult counts the outcome of a selective deletion.
type DeleteResult struct {
	// Deleted is the number of removed entries, files and directories.
	Deleted int

	// Preserved is the number of entries kept because the keep matcher
	// selected them.
	Preserved int
}

// DeleteRecursively removes everything under root except entries
// selected by keep. Matching is per-path: a kept directory keeps only
// itself, its children are still considered one by one. A directory
// not selected by keep is removed only once all of its children are
// gone. root itself is never removed. Symlinks are treated as plain
// entries; they are never followed.
//
// There is no rollback: the first I/O error aborts the walk and is
// returned with the failing path, leaving prior deletions in place.
func DeleteRecursively(fsys fs.Filesystem, root string, keep PathMatcher) (DeleteResult, error) {
	var res DeleteResult
	if _, err := deleteUnder(fsys, root, Not(keep), &res); err != nil {
		return res, err
	}
	return res, nil
}

// deleteUnder processes the children of dir and reports how many
// entries remain under it afterwards.
func deleteUnder(fsys fs.Filesystem, dir string, doomed PathMatcher, res *DeleteResult) (remaining int, err error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("fsutil: readdir %q: %w", dir, err)
	}
	for _, entry := range entries {
		p := fsys.Join(dir, entry.Name())
		if entry.IsDir() {
			left, err := deleteUnder(fsys, p, doomed, res)
			if err != nil {
				return 0, err
			}
			if doomed.Matches(p) && left == 0 {
				if err := fsys.Remove(p); err != nil {
					return 0, fmt.Errorf("fsutil: remove %q: %w", p, err)
				}
				res.Deleted++
				continue
			}
			if !doomed.Matches(p) {
				res.Preserved++
			}
			remaining++
			continue
		}
		if doomed.Matches(p) {
			if err := fsys.Remove(p); err != nil {
				return 0, fmt.Errorf("fsutil: remove %q: %w", p, err)
			}
			res.Deleted++
			continue
		}
		res.Preserved++
		remaining++
	}
	return remaining, nil
}
