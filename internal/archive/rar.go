package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// Rar handles RAR 4 and RAR 5 archives, including multi-volume sets.
type Rar struct{}

func (Rar) FormatName() string { return "RAR" }

// walkRar visits entries in archive order. An empty password lists the
// archive without keys; encrypted entry contents then fail to read.
func walkRar(path, password string, fn func(index int, h *rardecode.FileHeader, r io.Reader) (stop bool)) error {
	var opts []rardecode.Option
	if password != "" {
		opts = append(opts, rardecode.Password(password))
	}
	rc, err := rardecode.OpenReader(path, opts...)
	if err != nil {
		return fmt.Errorf("open rar: %w", err)
	}
	defer rc.Close()

	for i := 0; ; i++ {
		h, err := rc.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read rar header %d: %w", i, err)
		}
		if fn(i, h, rc) {
			return nil
		}
	}
}

// DetectTarget only considers encrypted entries: a RAR may mix plain and
// encrypted files, and a plain entry would accept any password. Archives
// with encrypted headers cannot be listed without the password.
func (Rar) DetectTarget(path string) (TargetFile, error) {
	var entries []entry
	err := walkRar(path, "", func(i int, h *rardecode.FileHeader, _ io.Reader) bool {
		if !h.IsDir && h.Encrypted {
			entries = append(entries, entry{index: i, name: h.Name, size: h.UnPackedSize})
		}
		return false
	})
	if errors.Is(err, rardecode.ErrArchiveEncrypted) {
		return TargetFile{}, fmt.Errorf("list rar (headers are encrypted): %w", err)
	}
	if err != nil {
		return TargetFile{}, err
	}
	return pickTarget(entries)
}

func (Rar) FileCount(path string) (int, error) {
	n := 0
	err := walkRar(path, "", func(int, *rardecode.FileHeader, io.Reader) bool {
		n++
		return false
	})
	return n, err
}

// TryPassword reports false as soon as the archive's password check value
// rejects the candidate, which rardecode surfaces while reading headers.
func (Rar) TryPassword(path, password string, target TargetFile) bool {
	ok := false
	_ = walkRar(path, password, func(i int, h *rardecode.FileHeader, r io.Reader) bool {
		if i != target.Index {
			return false
		}
		ok = h.Name == target.Name && h.Encrypted && prefixMatches(r, target.Extension)
		return true
	})
	return ok
}
