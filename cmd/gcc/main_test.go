package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompressDecompressCommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	original := []byte("casa casa casa, una casa!\n")
	require.NoError(t, os.WriteFile(input, original, 0o644))

	for _, step := range []string{"1", "2", "3", "4"} {
		comp := filepath.Join(dir, "out.gcc"+step)
		restored := filepath.Join(dir, "restored"+step+".txt")

		out, err := runCmd(t, "c"+step, input, comp)
		require.NoError(t, err)
		require.Contains(t, out, "ORIGINAL")
		require.Contains(t, out, "RATIO")

		out, err = runCmd(t, "d"+step, comp, restored)
		require.NoError(t, err)
		require.Contains(t, out, "Decompressed")

		got, err := os.ReadFile(restored)
		require.NoError(t, err)
		require.Equal(t, original, got)
	}
}

func TestDecompressCommandVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	comp := filepath.Join(dir, "out.gcc1")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0o644))

	_, err := runCmd(t, "c1", input, comp)
	require.NoError(t, err)

	_, err = runCmd(t, "d2", comp, filepath.Join(dir, "restored.txt"))
	require.Error(t, err)
}

func TestDecompressCommandRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a container"), 0o644))

	_, err := runCmd(t, "d1", garbage, filepath.Join(dir, "out.txt"))
	require.Error(t, err)
}

func TestCompressCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "c1", filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.gcc1"))
	require.Error(t, err)
}

func TestEmptyFileStats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	out, err := runCmd(t, "c1", input, filepath.Join(dir, "empty.gcc1"))
	require.NoError(t, err)
	require.Contains(t, out, "ORIGINAL")
	require.NotContains(t, out, "RATIO")
}
