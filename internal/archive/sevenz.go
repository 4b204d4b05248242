package archive

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/mholt/archives"
)

// SevenZip handles 7z archives. Entries are streamed by the extractor, so
// testing a password never stages files on disk.
type SevenZip struct{}

func (SevenZip) FormatName() string { return "7z" }

func walkSevenZip(path, password string, fn func(index int, f archives.FileInfo) error) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open 7z: %w", err)
	}
	defer fh.Close()

	index := 0
	return archives.SevenZip{Password: password}.Extract(context.Background(), fh,
		func(_ context.Context, f archives.FileInfo) error {
			err := fn(index, f)
			index++
			return err
		})
}

// DetectTarget lists the archive without a password. Archives with
// encrypted headers cannot be listed and yield an error.
func (SevenZip) DetectTarget(path string) (TargetFile, error) {
	var entries []entry
	err := walkSevenZip(path, "", func(i int, f archives.FileInfo) error {
		if !f.IsDir() {
			entries = append(entries, entry{index: i, name: f.NameInArchive, size: f.Size()})
		}
		return nil
	})
	if err != nil {
		return TargetFile{}, fmt.Errorf("list 7z (headers may be encrypted): %w", err)
	}
	return pickTarget(entries)
}

func (SevenZip) FileCount(path string) (int, error) {
	n := 0
	err := walkSevenZip(path, "", func(int, archives.FileInfo) error {
		n++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("list 7z: %w", err)
	}
	return n, nil
}

func (SevenZip) TryPassword(path, password string, target TargetFile) bool {
	ok := false
	_ = walkSevenZip(path, password, func(i int, f archives.FileInfo) error {
		if i != target.Index {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return fs.SkipAll
		}
		defer rc.Close()
		ok = f.NameInArchive == target.Name && prefixMatches(rc, target.Extension)
		return fs.SkipAll
	})
	return ok
}
