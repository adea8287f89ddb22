// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestComputeGolden(t *testing.T) {
	props := "hilbert_basis,support_hyperplanes,equations"

	out, err := execute(t, "compute", "testdata/square.yaml", "-p", props)
	require.NoError(t, err)
	assertGolden(t, "compute_text", out)

	out, err = execute(t, "--format", "json", "compute", "testdata/square.yaml", "-p", props)
	require.NoError(t, err)
	assertGolden(t, "compute_json", out)
}

func TestComputeDefaultProperties(t *testing.T) {
	out, err := execute(t, "--format", "json", "compute", "testdata/square.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Sections, 3)
	assert.Equal(t, Section{Name: "extreme_rays", Rows: [][]string{{"1", "2"}, {"2", "1"}}}, resp.Data.Sections[0])
}

func TestComputeUnknownProperty(t *testing.T) {
	for _, name := range []string{"volume", "integer_hull"} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "compute", "testdata/square.yaml", "-p", name)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [invalid_problem]")
		})
	}
}

func TestComputeDimensionMismatch(t *testing.T) {
	out, err := execute(t, "--format", "json", "compute", "testdata/mismatch.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "dimension_mismatch", resp.Error.Code)
}

func TestComputeBadProblemFile(t *testing.T) {
	for _, path := range []string{"testdata/missing.yaml", "testdata/unknown_key.yaml"} {
		t.Run(path, func(t *testing.T) {
			_, err := execute(t, "compute", path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestHullGolden(t *testing.T) {
	out, err := execute(t, "hull", "testdata/strip.yaml")
	require.NoError(t, err)
	assertGolden(t, "hull_text", out)
}

func TestHNFGolden(t *testing.T) {
	out, err := execute(t, "hnf", "testdata/hnf.yaml")
	require.NoError(t, err)
	assertGolden(t, "hnf_text", out)

	out, err = execute(t, "--format", "json", "hnf", "testdata/hnf.yaml")
	require.NoError(t, err)
	assertGolden(t, "hnf_json", out)
}

func TestHNFRejectsConeProblem(t *testing.T) {
	_, err := execute(t, "hnf", "testdata/square.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
