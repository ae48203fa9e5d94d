package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRun_RegisterSaveExit(t *testing.T) {
	// --- Arrange ---
	dataFile := filepath.Join(t.TempDir(), "Enrollments.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`[{"FirstName":"ann","LastName":"li","CourseName":"math"}]`), 0o600))
	cfg := &config.Config{DataFile: dataFile}
	in := strings.NewReader("1\njohn\ndoe\npython\n3\n4\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(in, out, cfg, zerolog.Nop())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "\tAnn Li is enrolled in Math\n\tJohn Doe is enrolled in Python\n")

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"FirstName":"ann","LastName":"li","CourseName":"math"},
		{"FirstName":"john","LastName":"doe","CourseName":"python"}
	]`, string(data))
}
