package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{
		{"benchmark-file-access"},
		{"benchmark-file-access", "a", "b"},
		{"benchmark-file-access", "a", "b", "c"},
		{"benchmark-file-access", "-h", "b"},
	} {
		var stdout, stderr bytes.Buffer

		assert.Equal(t, 1, run(args, &stdout, &stderr))
		assert.Empty(t, stdout.String())
		assert.Equal(t, "Usage: benchmark-file-access <file>\n", stderr.String())
	}
}

func TestRunReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("123456789"), 0644))

	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"benchmark-file-access", path}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "File: "+path+"\n")
	assert.Contains(t, out, "1. Sequential read (read)...\n")
	assert.Contains(t, out, "2. Random read (read)...\n")
	assert.Contains(t, out, "3. Sequential read (mmap)...\n")
	assert.Contains(t, out, "4. Random read (mmap)...\n")
	assert.Equal(t, 4, bytes.Count(stdout.Bytes(), []byte("   CRC64: 0x6C40DF5F0B497347\n")))

	assert.Contains(t, stderr.String(), `"msg":"checksums compared"`)
	assert.Contains(t, stderr.String(), `"agree":true`)
	assert.NotContains(t, stderr.String(), `"level":"warn"`)
	assert.NotContains(t, stderr.String(), `"level":"error"`)
}

func TestRunDashPrefixedPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-data.bin"), []byte("123456789"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"benchmark-file-access", "-data.bin"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "File: -data.bin\n")
	assert.Equal(t, 4, bytes.Count(stdout.Bytes(), []byte("   CRC64: 0x6C40DF5F0B497347\n")))
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"benchmark-file-access", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"fatal"`)
	assert.Contains(t, stderr.String(), `"op":"sequential-read: could not open file"`)
}
