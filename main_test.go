package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	ansicolor "github.com/fatih/color"
	"gotest.tools/v3/assert"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	ansicolor.NoColor = true

	var stdout, stderr bytes.Buffer
	err := realMain(
		context.Background(),
		strings.NewReader(stdin),
		&stdout,
		&stderr,
		append([]string{"totalmass"}, args...),
	)

	return stdout.String(), stderr.String(), err
}

func TestRealMain(t *testing.T) {
	stdout, stderr, err := run(t, "",
		"-elements", "testdata/elements.csv",
		"-units", "testdata/units.csv",
		"testdata/mixture.json",
	)

	assert.NilError(t, err)
	assert.Equal(t, "Total mass: 524.03 grams or 1.15 lbs\n", stdout)
	assert.Equal(t, "", stderr)
}

func TestRealMain_stdin(t *testing.T) {
	doc := `{"components": [{"name": "oxygen", "units": "kilogram", "mass": 1}]}`

	stdout, _, err := run(t, doc,
		"-elements", "testdata/elements.csv",
		"-units", "testdata/units.csv",
	)

	assert.NilError(t, err)
	assert.Equal(t, "Total mass: 1000.00 grams or 2.20 lbs\n", stdout)
}

func TestRealMain_skipsInvalidEntries(t *testing.T) {
	stdout, stderr, err := run(t, "",
		"-elements", "testdata/elements.csv",
		"-units", "testdata/units.csv",
		"testdata/mixed.json",
	)

	assert.NilError(t, err)
	assert.Equal(t, "Total mass: 524.03 grams or 1.15 lbs\n", stdout)
	assert.Assert(t, strings.Contains(stderr, "unit {furlong} for element carbon is not valid, skipping entry"))
	assert.Assert(t, strings.Contains(stderr, "element {unobtainium} not found in element table, skipping entry"))
}

func TestRealMain_emptyMixture(t *testing.T) {
	stdout, _, err := run(t, "",
		"-elements", "testdata/elements.csv",
		"-units", "testdata/units.csv",
		"testdata/empty.json",
	)

	assert.NilError(t, err)
	assert.Equal(t, "Total mass: 0.00 grams or 0.00 lbs\n", stdout)
}

func TestRealMain_jsonOutput(t *testing.T) {
	stdout, _, err := run(t, "",
		"-elements", "testdata/elements.csv",
		"-units", "testdata/units.csv",
		"-json",
		"testdata/mixture.json",
	)

	assert.NilError(t, err)
	assert.Equal(t, `{"grams":"524.03","pounds":"1.15"}`+"\n", stdout)
}

func TestRealMain_fatal(t *testing.T) {
	testcases := []struct {
		name string
		args []string
	}{
		{
			name: "missing elements table",
			args: []string{
				"-elements", "testdata/nope.csv",
				"-units", "testdata/units.csv",
				"testdata/mixture.json",
			},
		},
		{
			name: "missing units table",
			args: []string{
				"-elements", "testdata/elements.csv",
				"-units", "testdata/nope.csv",
				"testdata/mixture.json",
			},
		},
		{
			name: "missing mixture document",
			args: []string{
				"-elements", "testdata/elements.csv",
				"-units", "testdata/units.csv",
				"testdata/nope.json",
			},
		},
		{
			name: "broken mixture document",
			args: []string{
				"-elements", "testdata/elements.csv",
				"-units", "testdata/units.csv",
				"testdata/broken.json",
			},
		},
		{
			name: "json and md together",
			args: []string{
				"-elements", "testdata/elements.csv",
				"-units", "testdata/units.csv",
				"-json", "-md",
				"testdata/mixture.json",
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(t, "", tc.args...)
			assert.Assert(t, err != nil)
			assert.Equal(t, "", stdout, "no report on fatal error")
		})
	}
}
