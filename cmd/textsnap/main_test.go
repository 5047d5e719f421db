package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/snapshot"
)

func encodeDecode(t *testing.T, input string, encodeArgs ...string) string {
	t.Helper()

	var frame, stderr bytes.Buffer
	err := run(encodeArgs, strings.NewReader(input), &frame, &stderr)
	require.NoError(t, err, stderr.String())

	var out bytes.Buffer
	err = run([]string{"--decode"}, bytes.NewReader(frame.Bytes()), &out, &stderr)
	require.NoError(t, err, stderr.String())

	return out.String()
}

func TestRun_RoundTrip(t *testing.T) {
	inputs := []string{"", "plain ascii\n", "naïve café ☕ 😀"}
	compressions := []string{"none", "zstd", "s2", "lz4"}

	for _, in := range inputs {
		for _, c := range compressions {
			require.Equal(t, in, encodeDecode(t, in, "--compression", c))
		}
	}
}

func TestRun_CompressionFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "textbuf.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("compression = \"s2\"\n"), 0o600))

	var frame, stderr bytes.Buffer
	require.NoError(t, run([]string{"-c", cfgPath}, strings.NewReader("abc"), &frame, &stderr))

	var header snapshot.Header
	require.NoError(t, header.Parse(frame.Bytes()))
	require.Equal(t, format.CompressionS2, header.Compression)

	frame.Reset()
	require.NoError(t, run([]string{"-c", cfgPath, "--compression", "lz4"}, strings.NewReader("abc"), &frame, &stderr))
	require.NoError(t, header.Parse(frame.Bytes()))
	require.Equal(t, format.CompressionLZ4, header.Compression)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	framePath := filepath.Join(dir, "in.snap")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("file → file"), 0o600))

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-i", inPath, "-o", framePath}, nil, nil, &stderr))
	require.NoError(t, run([]string{"-d", "-i", framePath, "-o", outPath}, nil, nil, &stderr))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "file → file", string(out))
}

func TestRun_DebugLogging(t *testing.T) {
	var frame, stderr bytes.Buffer
	err := run([]string{"--log-level", "debug"}, strings.NewReader(strings.Repeat("x", 40)+"é"), &frame, &stderr)
	require.NoError(t, err)

	logs := stderr.String()
	require.Contains(t, logs, "storage grown")
	require.Contains(t, logs, "storage inflated")
	require.Contains(t, logs, "encoded snapshot")
}

func TestRun_Errors(t *testing.T) {
	var out, stderr bytes.Buffer

	err := run([]string{"--compression", "brotli"}, strings.NewReader("x"), &out, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	err = run([]string{"--log-level", "trace"}, strings.NewReader("x"), &out, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidLogLevel)

	err = run([]string{"--decode"}, strings.NewReader("this is not a snapshot frame"), &out, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	err = run([]string{"extra"}, strings.NewReader("x"), &out, &stderr)
	require.Error(t, err)

	err = run([]string{"--bogus"}, strings.NewReader("x"), &out, &stderr)
	require.Error(t, err)

	err = run([]string{"-i", filepath.Join(t.TempDir(), "missing")}, nil, &out, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)
}
