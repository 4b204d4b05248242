package archive

import (
	"errors"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const sniffBytes = 8 << 10

// Extensions whose content mimetype recognizes from magic bytes.
var sniffable = map[string]struct{}{}

func init() {
	for _, ext := range []string{
		// images
		"jpg", "jpeg", "png", "gif", "webp", "bmp", "tiff", "tif", "psd", "ico",
		"heic", "heif", "avif", "jxl",
		// video
		"mp4", "m4v", "mkv", "webm", "mov", "avi", "flv", "3gp",
		// audio
		"mp3", "flac", "wav", "ogg", "m4a", "aac", "aiff", "amr",
		// archives
		"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "zst", "lz4", "cab", "rpm", "deb",
		// documents
		"pdf", "docx", "xlsx", "pptx", "odt", "ods", "odp", "epub", "rtf",
		// fonts
		"ttf", "otf", "woff", "woff2",
		// binaries
		"exe", "wasm", "class",
		// other
		"swf", "sqlite", "nes", "crx", "lnk", "dcm",
	} {
		sniffable[ext] = struct{}{}
	}
}

var extAliases = map[string]string{
	"jpeg": "jpg",
	"tif":  "tiff",
	"htm":  "html",
	"yml":  "yaml",
}

// entryExtension returns the lowercased extension of an entry name, without
// the dot. Extensions longer than five characters are ignored.
func entryExtension(name string) (string, bool) {
	ext := strings.TrimPrefix(path.Ext(strings.ReplaceAll(name, "\\", "/")), ".")
	if ext == "" || len(ext) > 5 {
		return "", false
	}
	return strings.ToLower(ext), true
}

func sniffableExtension(name string) (string, bool) {
	ext, ok := entryExtension(name)
	if !ok {
		return "", false
	}
	_, ok = sniffable[ext]
	return ext, ok
}

func canonicalExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if a, ok := extAliases[ext]; ok {
		return a
	}
	return ext
}

// sniffFamilies lists the detected extensions a target extension also
// accepts. Office and e-book containers are recognized from their first zip
// entries, so a prefix may only sniff as plain zip; ogg streams are reported
// by codec. The reverse never holds: a .zip target rejects docx content.
var sniffFamilies = map[string][]string{
	"ogg":  {"oga", "ogv"},
	"m4a":  {"mp4"},
	"docx": {"zip"},
	"xlsx": {"zip"},
	"pptx": {"zip"},
	"odt":  {"zip"},
	"ods":  {"zip"},
	"odp":  {"zip"},
	"epub": {"zip"},
}

// contentMatches reports whether data sniffs as the type named by ext.
func contentMatches(data []byte, ext string) bool {
	if len(data) == 0 {
		return false
	}
	want := canonicalExtension(ext)
	got := canonicalExtension(mimetype.Detect(data).Extension())
	if got == want {
		return true
	}
	return slices.Contains(sniffFamilies[want], got)
}

// prefixMatches reads up to sniffBytes from r and sniffs them. A short read
// is fine; any other read error means the password was wrong.
func prefixMatches(r io.Reader, ext string) bool {
	buf := make([]byte, sniffBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}
	return contentMatches(buf[:n], ext)
}
