// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvcone/boundary"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the computation ran and reported a non-OK status
	ExitCommandError = 2 // the problem file, flags or environment were unusable
)

// ExitError carries the process exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError returns an ExitError caused by err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to a process exit code: 0 for nil, the carried code
// for an ExitError, ExitFailure for anything else.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the JSON envelope of every command.
type Response struct {
	Status string         `json:"status"` // "ok" | "error"
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError names a failed call. Code is a boundary status code name
// such as "singular_matrix", or "invalid_problem" for unusable input.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Printer writes command results to Out as text or JSON. Diagnostics go to
// Diag so that JSON on Out stays parseable.
type Printer struct {
	JSON    bool
	Verbose bool
	Out     io.Writer
	Diag    io.Writer
}

func newPrinter(opts *RootOptions, out, diag io.Writer) *Printer {
	return &Printer{JSON: opts.Format == "json", Verbose: opts.Verbose, Out: out, Diag: diag}
}

// Print writes a successful result. Text output relies on data's String.
func (p *Printer) Print(data any) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(Response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprint(p.Out, data)
	return err
}

func (p *Printer) printError(code, message string) {
	if p.JSON {
		_ = json.NewEncoder(p.Out).Encode(Response{Status: "error", Error: &ResponseError{Code: code, Message: message}})
		return
	}
	fmt.Fprintf(p.Out, "Error [%s]: %s\n", code, message)
}

// Fail reports a non-OK status and returns the ExitFailure error.
func (p *Printer) Fail(st boundary.Status) error {
	p.printError(st.Code.String(), st.Message)
	return NewExitError(ExitFailure, st.String())
}

// Reject reports unusable input and returns the ExitCommandError error.
func (p *Printer) Reject(err error) error {
	p.printError("invalid_problem", err.Error())
	return WrapExitError(ExitCommandError, "invalid problem", err)
}

// Debugf writes one diagnostic line when Verbose is set.
func (p *Printer) Debugf(format string, args ...any) {
	if p.Verbose {
		fmt.Fprintf(p.Diag, format+"\n", args...)
	}
}

// release frees h and reports a failed Free as a diagnostic.
func (p *Printer) release(s *boundary.Surface, h boundary.Handle) {
	if st := s.Free(h); !st.Ok() {
		p.Debugf("free %s: %s", h, st)
	}
}

// Section is one named matrix of a result. Rows is never nil, so JSON shows
// an empty matrix as [].
type Section struct {
	Name string     `json:"name"`
	Rows [][]string `json:"rows"`
}

func splitRows(a *boundary.Array) [][]string {
	out := [][]string{}
	if a == nil {
		return out
	}
	for i := range a.Rows {
		out = append(out, a.Row(i))
	}
	return out
}

func newSection(name string, a *boundary.Array) Section {
	return Section{Name: name, Rows: splitRows(a)}
}

func writeRows(b *strings.Builder, rows [][]string) {
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(strings.Join(row, " "))
		b.WriteByte('\n')
	}
}

// Result is the payload of compute and hull.
type Result struct {
	Sections []Section `json:"sections"`
}

func (r Result) String() string {
	var b strings.Builder
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "%s (%d):\n", s.Name, len(s.Rows))
		writeRows(&b, s.Rows)
	}
	return b.String()
}

// MatrixResult is the payload of hnf.
type MatrixResult struct {
	Den  string     `json:"den"`
	Rows [][]string `json:"rows"`
}

func newMatrixResult(a *boundary.RationalArray) MatrixResult {
	return MatrixResult{Den: a.Den, Rows: splitRows(&a.Array)}
}

func (m MatrixResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "den %s\n", m.Den)
	writeRows(&b, m.Rows)
	return b.String()
}
