package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/yeka/zip"
)

// zstdMethod is the APPNOTE compression method id for Zstandard.
const zstdMethod = 93

func init() {
	zip.RegisterDecompressor(zstdMethod, func(r io.Reader) io.ReadCloser {
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return io.NopCloser(errReader{err})
		}
		return d.IOReadCloser()
	})
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// Zip handles ZipCrypto and WinZip AES encrypted ZIP archives.
type Zip struct{}

func (Zip) FormatName() string { return "ZIP" }

func withZip(path string, fn func(*os.File, *zip.Reader) error) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return fmt.Errorf("stat zip: %w", err)
	}
	zr, err := zip.NewReader(fh, st.Size())
	if err != nil {
		return fmt.Errorf("read zip: %w", err)
	}
	return fn(fh, zr)
}

// DetectTarget only considers encrypted entries: a plain entry would accept
// any password.
func (Zip) DetectTarget(path string) (TargetFile, error) {
	var target TargetFile
	err := withZip(path, func(_ *os.File, zr *zip.Reader) error {
		var entries []entry
		for i, f := range zr.File {
			if f.FileInfo().IsDir() || !f.IsEncrypted() {
				continue
			}
			entries = append(entries, entry{index: i, name: f.Name, size: int64(f.UncompressedSize64)})
		}
		var err error
		target, err = pickTarget(entries)
		return err
	})
	return target, err
}

func (Zip) FileCount(path string) (int, error) {
	var n int
	err := withZip(path, func(_ *os.File, zr *zip.Reader) error {
		n = len(zr.File)
		return nil
	})
	return n, err
}

func (Zip) TryPassword(path, password string, target TargetFile) bool {
	ok := false
	_ = withZip(path, func(fh *os.File, zr *zip.Reader) error {
		if target.Index < 0 || target.Index >= len(zr.File) {
			return nil
		}
		f := zr.File[target.Index]

		if isZipCrypto(f) && (f.Method == zip.Store || f.Method == zip.Deflate) {
			r, pass := openZipCrypto(fh, f, password)
			ok = pass && prefixMatches(r, target.Extension)
			return nil
		}

		f.SetPassword(password)
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		defer rc.Close()
		ok = prefixMatches(rc, target.Extension)
		return nil
	})
	return ok
}
