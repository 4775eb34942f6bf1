// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgcrypto/expstat/expfmt"
)

func TestTable(t *testing.T) {
	golden(t, "latex", "table", "--group", "|e|", "--target", "time", "--scale", "ms:s", "--aggregates", "max,median", "nf.csv")
	golden(t, "splitText", "table", "-g", "|e|", "-t", "height", "--split", "rank", "--aggregates", "max, mean", "--format", "text", "nf.csv")
	golden(t, "report", "table", "--config", "report.yaml", "nf.csv")
}

func TestDescribe(t *testing.T) {
	golden(t, "describe", "describe", "--filter", "rank:2", "--skip", "rank", "nf.csv")
}

func TestSelect(t *testing.T) {
	golden(t, "select", "select", "--filter", "time:..150", "nf.csv")
}

func TestMissingColumn(t *testing.T) {
	err := goldenErr(t, "missing", "table", "--group", "|e|", "-t", "time", "-t", "height", "notime.csv")
	assert.True(t, errors.Is(err, expfmt.ErrMalformedInput), "got %v", err)
}

func TestUsageErrors(t *testing.T) {
	check := func(want string, args ...string) {
		t.Helper()
		var stdout, stderr bytes.Buffer
		err := expstat(&stdout, &stderr, args)
		if assert.Error(t, err, args) {
			assert.Contains(t, err.Error(), want)
			assert.Contains(t, stderr.String(), "expstat: ")
		}
	}
	check("no group column", "table", "-t", "time", "testdata/nf.csv")
	check("no tables", "table", "-g", "rank", "testdata/nf.csv")
	check("unknown format", "table", "-g", "rank", "-t", "time", "--format", "html", "testdata/nf.csv")
	check("unknown scale", "table", "-g", "rank", "-t", "time", "--scale", "s:ms", "testdata/nf.csv")
	check("unknown aggregate", "table", "-g", "rank", "-t", "time", "--aggregates", "mode", "testdata/nf.csv")
	check("syntax error", "table", "-g", "rank", "-t", "time", "--filter", "rank:", "testdata/nf.csv")
	check("nope", "table", "-g", "rank", "-t", "time", "--filter", "nope:1", "testdata/nf.csv")
	check("single character", "--delim", "::", "select", "testdata/nf.csv")
	check("invalid log level", "--log-level", "loud", "select", "testdata/nf.csv")
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	out := filepath.Join(dir, "chart.png")
	err := expstat(&stdout, &stderr, []string{
		"--log-level", "info",
		"plot", "-x", "|e|", "-y", "time", "-y", "height", "--split", "rank", "--scale", "ms:s",
		"-o", out, "testdata/nf.csv"})
	require.NoError(t, err, stderr.String())
	for _, name := range []string{"chart_rank=2.png", "chart_rank=3.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if assert.NoError(t, err) {
			assert.NotZero(t, fi.Size())
		}
	}
	assert.Equal(t, 2, strings.Count(stderr.String(), "wrote chart"), stderr.String())

	out = filepath.Join(dir, "boxes.svg")
	err = expstat(&stdout, &stderr, []string{
		"plot", "-x", "|e|", "-y", "height", "--boxes", "-o", out, "testdata/nf.csv"})
	require.NoError(t, err, stderr.String())
	_, err = os.Stat(out)
	assert.NoError(t, err)

	// A filter that selects nothing skips the chart with a warning,
	// with and without box plots.
	for _, extra := range [][]string{nil, {"--boxes"}} {
		stderr.Reset()
		out = filepath.Join(dir, "empty.png")
		args := append([]string{"--filter", "rank:99",
			"plot", "-x", "|e|", "-y", "time", "-o", out, "testdata/nf.csv"}, extra...)
		err = expstat(&stdout, &stderr, args)
		require.NoError(t, err, stderr.String())
		assert.Contains(t, stderr.String(), "no rows to plot")
		_, err = os.Stat(out)
		assert.True(t, os.IsNotExist(err), "empty chart written with %v", extra)
	}
}

func TestHist(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := expstat(&stdout, &stderr, []string{
		"--log-level", "info",
		"hist", "--num", "time", "--den", "height", "--out-dir", dir,
		"testdata/nf.csv", "testdata/notime.csv"})
	require.NoError(t, err, stderr.String())

	_, err = os.Stat(filepath.Join(dir, "nf_hist.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "notime_hist.png"))
	assert.True(t, os.IsNotExist(err), "malformed file was not skipped")
	assert.Contains(t, stderr.String(), "skipping file")
	assert.Contains(t, stderr.String(), "notime.csv")
	assert.Regexp(t, `"bins":\s*20\b`, stderr.String(), "default bin count")
}

func TestSplitFileName(t *testing.T) {
	check := func(name, col string, k float64, want string) {
		t.Helper()
		if got := splitFileName(name, col, k); got != want {
			t.Errorf("splitFileName(%q, %q, %v) = %q, want %q", name, col, k, got, want)
		}
	}
	check("out/chart.png", "rank", 3, "out/chart_rank=3.png")
	check("chart.pdf", "|e|", 2.5, "chart_e=2.5.pdf")
	check("chart", "rank", 1, "chart_rank=1")
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := goldenErr(t, name, args...); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

// goldenErr runs expstat in testdata and compares its output to the
// files name.stdout and name.stderr. It returns expstat's error.
func goldenErr(t *testing.T, name string, args ...string) error {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("expstat %s", strings.Join(args, " "))
	err := expstat(&got, &gotErr, args)

	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
	return err
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("%s differs (-want +got):\n%s", wantPath, diff)
		// Write a "got" file for reference.
		gotPath := name + ".got-" + sub
		if err := os.WriteFile(gotPath, got, 0666); err != nil {
			t.Fatalf("error writing %s: %s", gotPath, err)
		}
	}
}
