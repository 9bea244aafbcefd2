package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fourThrees = "CEAQIAIFB4WDANQAAA"

func TestRunEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Riders
cards:
  - {code: 01SI015, count: 3}
  - {code: 01SI044, count: 3}
  - {code: 01SI048, count: 3}
  - {code: 01SI054, count: 3}
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, run("encode", []string{"-file", path}, &out))
	assert.Equal(t, fourThrees+"\n", out.String())
}

func TestRunEncode_FromCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: "+fourThrees+"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run("encode", []string{"-file", path}, &out))
	assert.Equal(t, fourThrees+"\n", out.String())
}

func TestRunEncode_BadCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  - {code: ZZ0000, count: 1}\n"), 0o644))

	assert.Error(t, run("encode", []string{"-file", path}, &bytes.Buffer{}))
	assert.Error(t, run("encode", nil, &bytes.Buffer{}))
}

func TestRunDecode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("decode", []string{"-code", fourThrees, "-name", "Riders"}, &out))
	assert.Equal(t, "# Riders\n3x 01SI015\n3x 01SI044\n3x 01SI048\n3x 01SI054\n", out.String())

	assert.Error(t, run("decode", []string{"-code", "!!"}, &bytes.Buffer{}))
}

func TestRunQR(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	var out bytes.Buffer
	require.NoError(t, run("qr", []string{"-code", fourThrees, "-out", dir, "-size", "128"}, &out))
	assert.Equal(t, filepath.Join(dir, "deck.png")+"\n", out.String())

	info, err := os.Stat(filepath.Join(dir, "deck.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunUnknown(t *testing.T) {
	assert.Error(t, run("shuffle", nil, &bytes.Buffer{}))
}
