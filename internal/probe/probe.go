// Package probe reports which GL entry points a resolver can provide.
package probe

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/tinyrange/cgl/gl"
)

// ErrLibraryWithEGL is returned when a GL library path is given together with
// EGL resolution, which always uses the system EGL libraries.
var ErrLibraryWithEGL = errors.New("a GL library path cannot be combined with EGL")

// NewResolver picks the resolver for the probe: EGL when useEGL is set,
// otherwise the platform library at lib (empty for the default).
func NewResolver(lib string, useEGL bool) (gl.Resolver, error) {
	if useEGL {
		if lib != "" {
			return nil, ErrLibraryWithEGL
		}
		return gl.EGLResolver()
	}
	return gl.LibraryResolver(lib)
}

// Result is the outcome of resolving a single entry point.
type Result struct {
	Name string
	Addr uintptr
}

func (r Result) Resolved() bool {
	return r.Addr != 0
}

type Report struct {
	Results  []Result
	Resolved int
	Missing  int
}

// Run loads every entry point through resolve and summarizes the result.
func Run(resolve gl.Resolver) (*gl.Functions, Report) {
	fns := gl.LoadAll(resolve)

	var report Report
	for _, name := range gl.EntryPoints() {
		res := Result{Name: name, Addr: fns.Addr(name)}
		if res.Resolved() {
			report.Resolved++
		} else {
			report.Missing++
		}
		report.Results = append(report.Results, res)
	}
	return fns, report
}

// Render writes the report as a table. With missingOnly set, resolved entry
// points are left out.
func (r Report) Render(w io.Writer, missingOnly bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Entry point", "Address", "Status"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, res := range r.Results {
		if missingOnly && res.Resolved() {
			continue
		}
		status := "missing"
		addr := "-"
		if res.Resolved() {
			status = "ok"
			addr = fmt.Sprintf("%#x", res.Addr)
		}
		table.Append([]string{res.Name, addr, status})
	}

	table.SetFooter([]string{"", fmt.Sprintf("%d/%d", r.Resolved, len(r.Results)), "resolved"})
	table.Render()
}
