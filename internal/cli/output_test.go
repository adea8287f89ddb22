// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcone/boundary"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	inner := errors.New("inner")
	err := WrapExitError(ExitFailure, "outer", inner)
	assert.Equal(t, "outer: inner", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestPrinterPrintJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{JSON: true, Out: buf}

	require.NoError(t, p.Print(Result{Sections: []Section{newSection("equations", nil)}}))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
	assert.Contains(t, buf.String(), `"rows":[]`)
}

func TestPrinterFailText(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Out: buf}

	err := p.Fail(boundary.Status{Code: boundary.SingularMatrix, Message: "det = 0"})
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [singular_matrix]: det = 0\n", buf.String())
}

func TestPrinterRejectJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{JSON: true, Out: buf}

	err := p.Reject(errors.New("rows: matrix is empty"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ResponseError{Code: "invalid_problem", Message: "rows: matrix is empty"}, *resp.Error)
}

func TestPrinterDebugf(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	p := &Printer{JSON: true, Out: out, Diag: diag}

	p.Debugf("hidden %d", 1)
	assert.Empty(t, diag.String())

	p.Verbose = true
	p.Debugf("shown %d", 2)
	assert.Equal(t, "shown 2\n", diag.String())
	assert.Empty(t, out.String())
}

func TestPrinterReleaseReportsFailedFree(t *testing.T) {
	diag := &bytes.Buffer{}
	p := &Printer{Verbose: true, Out: io.Discard, Diag: diag}
	s := boundary.NewSurface(nil)

	h, st := s.NewCone(boundary.ConeRequest{Dim: 1, Inequalities: boundary.NewArray(1, 1, "1")})
	require.True(t, st.Ok(), st.String())
	p.release(s, h)
	assert.Empty(t, diag.String())
	assert.Zero(t, s.Len())

	p.release(s, h)
	assert.Contains(t, diag.String(), "free "+string(h)+": unknown_handle")
}

func TestResultString(t *testing.T) {
	r := Result{Sections: []Section{
		newSection("vertices", boundary.NewArray(2, 2, "1", "0", "1", "3")),
		newSection("equations", nil),
	}}
	assert.Equal(t, "vertices (2):\n  1 0\n  1 3\nequations (0):\n", r.String())
}
