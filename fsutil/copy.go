package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/luckydonald/copybara/fs"
)

// CopyRecursively copies the tree rooted at src into dst, overlaying
// whatever is already there: directories are created as needed, files
// overwrite their targets, symlinks are recreated with their original
// target string. Nothing under dst is deleted. Returns the number of
// files and links written.
//
// Target paths are resolved with securejoin against dst, so a hostile
// name or a symlink already present under dst cannot redirect a write
// outside dst.
//
// There is no rollback: the first error aborts the walk and is
// returned with the failing path, leaving prior copies in place.
func CopyRecursively(fsys fs.Filesystem, src, dst string) (int, error) {
	copied := 0
	err := fsys.Walk(src, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return fmt.Errorf("fsutil: relativize %q: %w", p, err)
		}
		if rel == "." {
			return nil
		}
		target, err := securejoin.SecureJoinVFS(dst, filepath.ToSlash(rel), fsys)
		if err != nil {
			return fmt.Errorf("fsutil: join %q under %q: %w", rel, dst, err)
		}
		switch {
		case info.IsDir():
			if err := fsys.MkdirAll(target, info.Mode().Perm()); err != nil {
				return err
			}
		case info.Mode()&os.ModeSymlink != 0:
			if err := copyLink(fsys, p, target); err != nil {
				return err
			}
			copied++
		default:
			if err := copyFile(fsys, p, target, info.Mode().Perm()); err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

func copyFile(fsys fs.Filesystem, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("fsutil: copy %q to %q: %w", src, dst, err)
	}
	return out.Close()
}

// copyLink recreates the symlink at src as dst, replacing whatever
// entry dst currently is. The target string is carried over verbatim,
// relative targets stay relative.
func copyLink(fsys fs.Filesystem, src, dst string) error {
	target, err := fsys.Readlink(src)
	if err != nil {
		return err
	}
	if _, err := fsys.Lstat(dst); err == nil {
		if err := fsys.Remove(dst); err != nil {
			return err
		}
	}
	return fsys.Symlink(target, dst)
}
