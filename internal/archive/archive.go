// Package archive tests candidate passwords against one entry of a ZIP, 7z
// or RAR container. Adapters are stateless: every call reopens the file, so
// they are safe for concurrent use without locking.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported archive format (supported: ZIP, 7z, RAR)")
	ErrNoTarget          = errors.New("no entry with a recognizable file type")
)

// TargetFile is the entry used as the password oracle.
type TargetFile struct {
	Index     int
	Name      string
	Extension string
	Size      int64
}

// Adapter is implemented once per container format.
type Adapter interface {
	// DetectTarget picks the entry to test passwords against. It returns
	// ErrNoTarget when no entry has a sniffable type.
	DetectTarget(path string) (TargetFile, error)
	FileCount(path string) (int, error)
	// TryPassword reports whether password decrypts target to content of
	// the expected type. Every failure counts as a wrong password.
	TryPassword(path, password string, target TargetFile) bool
	FormatName() string
}

type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	FormatSevenZip
	FormatRar
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "ZIP"
	case FormatSevenZip:
		return "7z"
	case FormatRar:
		return "RAR"
	}
	return "unknown"
}

var formatsByExt = map[string]Format{
	".zip": FormatZip,
	".7z":  FormatSevenZip,
	".rar": FormatRar,
}

// DetectFormat resolves the container format from the file extension and,
// when the extension is not a known one, from the leading bytes.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	defer fh.Close()

	format, _, err := archives.Identify(context.Background(), "", fh)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if f, ok := formatsByExt[format.Extension()]; ok {
		return f, nil
	}
	return FormatUnknown, fmt.Errorf("%w: detected %s", ErrUnsupportedFormat, format.Extension())
}

// NewAdapter returns the adapter for f, or nil for FormatUnknown.
func NewAdapter(f Format) Adapter {
	switch f {
	case FormatZip:
		return Zip{}
	case FormatSevenZip:
		return SevenZip{}
	case FormatRar:
		return Rar{}
	}
	return nil
}

type entry struct {
	index int
	name  string
	size  int64
}

// pickTarget returns the smallest sniffable entry; ties go to the lowest
// index. Smaller targets keep per-candidate decode work down for solid
// formats that must decompress everything before the target.
func pickTarget(entries []entry) (TargetFile, error) {
	var best *TargetFile
	for _, e := range entries {
		ext, ok := sniffableExtension(e.name)
		if !ok {
			continue
		}
		if best == nil || e.size < best.Size {
			best = &TargetFile{Index: e.index, Name: e.name, Extension: ext, Size: e.size}
		}
	}
	if best == nil {
		return TargetFile{}, ErrNoTarget
	}
	return *best, nil
}
