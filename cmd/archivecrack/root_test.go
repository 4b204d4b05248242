package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeka/zip"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"),
	bytes.Repeat([]byte{0}, 128)...)

// writeArchive creates a ZIP with one ZipCrypto-protected PNG.
func writeArchive(t *testing.T, password string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photos.zip")
	fh, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(fh)
	dst, err := w.Encrypt("holiday.png", password, zip.StandardEncryption)
	require.NoError(t, err)
	_, err = dst.Write(pngData)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, fh.Close())
	return path
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCrackFound(t *testing.T) {
	path := writeArchive(t, "7a")
	code, out, errOut := execute(t, "-q", "--skip-dictionary", "-c", "digit,lower", "-l", "2", path)
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "*** PASSWORD FOUND: 7a ***")
	assert.Contains(t, out, "Checked: 1296")
}

func TestCrackServesMetrics(t *testing.T) {
	path := writeArchive(t, "3")
	code, out, errOut := execute(t, "-q", "--skip-dictionary", "-c", "digit", "-l", "1",
		"--metrics-addr", "127.0.0.1:0", "--log-format", "json", path)
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "PASSWORD FOUND: 3")
	assert.Contains(t, errOut, `"msg":"serving metrics"`)
}

func TestCrackFoundInDictionary(t *testing.T) {
	path := writeArchive(t, "correct-horse")
	dict := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(dict, []byte("# mine\nwrong\ncorrect-horse\n"), 0o644))

	code, out, errOut := execute(t, "-q", "-D", dict, "-c", "digit", "-l", "1", path)
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "PASSWORD FOUND: correct-horse")
	assert.Contains(t, out, "Phase: dictionary")
}

func TestCrackNotFound(t *testing.T) {
	path := writeArchive(t, "longer-than-one")
	code, out, _ := execute(t, "-q", "--skip-dictionary", "-c", "digit", "-l", "1", path)
	assert.Equal(t, exitNotFound, code)
	assert.Contains(t, out, "Password not found. Checked: 10")
}

func TestCrackConfigErrors(t *testing.T) {
	path := writeArchive(t, "x")
	cases := [][]string{
		{"-l", "4", "-m", "6", path},
		{"--min-length", "3", "-m", "2", path},
		{"-c", "nope", path},
		{"-l", "1"},
		{"--log-format", "xml", path},
		{filepath.Join(t.TempDir(), "notes.txt")},
	}
	for _, args := range cases {
		code, _, errOut := execute(t, append([]string{"-q"}, args...)...)
		assert.Equal(t, exitFatal, code, strings.Join(args, " "))
		assert.Contains(t, errOut, "Error:", strings.Join(args, " "))
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := writeArchive(t, "55")
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"archive: "+path+"\ncharsets: [lower]\nlength: 2\nskip_dictionary: true\n"), 0o644))

	// lower letters alone cannot produce "55"
	code, _, _ := execute(t, "-q", "--config", cfgPath)
	assert.Equal(t, exitNotFound, code)

	code, out, errOut := execute(t, "-q", "--config", cfgPath, "-c", "digit")
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "PASSWORD FOUND: 55")
}

func TestResolveConfigKeepsUnsetFlags(t *testing.T) {
	cmd := newRootCmd(io.Discard, io.Discard)
	require.NoError(t, cmd.ParseFlags([]string{"-m", "3"}))
	opts := &rootOptions{}
	// bind parsed values the way RunE sees them
	opts.maxLength, _ = cmd.Flags().GetInt("max-length")

	cfg, err := resolveConfig(cmd, opts, []string{"a.zip"})
	require.NoError(t, err)
	assert.Equal(t, "a.zip", cfg.ArchivePath)
	require.NotNil(t, cfg.MaxLength)
	assert.Equal(t, 3, *cfg.MaxLength)
	assert.Nil(t, cfg.Length)
	assert.Equal(t, 1, cfg.MinLength)
	assert.Equal(t, []string{"lower", "upper", "digit"}, cfg.Charsets)
}

func TestInspect(t *testing.T) {
	path := writeArchive(t, "pw")
	code, out, errOut := execute(t, "inspect", path)
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "(ZIP, 1 entries)")
	assert.Contains(t, out, "Target:  holiday.png (#0, png,")
}

func TestInspectNoTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.zip")
	fh, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(fh)
	dst, err := w.Encrypt("notes.txt", "pw", zip.StandardEncryption)
	require.NoError(t, err)
	_, err = dst.Write([]byte("plain words"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, fh.Close())

	code, _, errOut := execute(t, "inspect", path)
	assert.Equal(t, exitFatal, code)
	assert.Contains(t, errOut, "recognizable")
}

func TestCharsets(t *testing.T) {
	code, out, _ := execute(t, "charsets")
	require.Equal(t, exitFound, code)
	for _, name := range []string{"pinyin", "lower", "upper", "digit", "symbol", "ascii", "fullwidth", "chinese"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "3500")
}

func TestTickerProgress(t *testing.T) {
	var buf bytes.Buffer
	p := &tickerProgress{
		log:      slog.New(slog.NewTextHandler(&buf, nil)),
		interval: 5 * time.Millisecond,
	}
	p.Start("length 2", 100)
	p.Add(40)
	time.Sleep(30 * time.Millisecond)
	p.Finish()

	assert.Contains(t, buf.String(), "checked=40")
	assert.Contains(t, buf.String(), `pass="length 2"`)
}

func TestNewProgress(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Nil(t, newProgress(io.Discard, log, true))
	assert.IsType(t, &tickerProgress{}, newProgress(&bytes.Buffer{}, log, false))
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(io.Discard, "debug", "json")
	assert.NoError(t, err)
	_, err = newLogger(io.Discard, "loud", "text")
	assert.Error(t, err)
}
