// Package ux renders a parsed model and its report for the terminal.
// It only reads the model; all interpretation happened in the parser.
package ux

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func section(name string) {
	fmt.Printf("\n%s%s%s\n", Bold, name, Reset)
}

// RenderModel prints the full model summary, section by section, in
// the tab order the viewer uses.
func RenderModel(m *model.Model) {
	section("Model")
	if m.Info.Title != "" {
		fmt.Printf("  %-14s %s\n", "title", m.Info.Title)
	}
	fmt.Printf("  %-14s %d\n", "nodes", m.Info.Nodes)
	fmt.Printf("  %-14s %d\n", "elements", m.Info.Elements)
	fmt.Printf("  %-14s %d\n", "constraints", m.Info.Constraints)
	for _, k := range sortedKeys(m.Info.Extra) {
		fmt.Printf("  %s%-14s %s%s\n", Dim, strings.ToLower(k), m.Info.Extra[k], Reset)
	}

	if len(m.Params) > 0 {
		section("Params")
		for _, p := range m.Params {
			fmt.Printf("  %-20s %s\n", p.Name, p.Value)
		}
	}

	if len(m.NLParams) > 0 {
		section("Nonlinear control")
		for _, sid := range sortedKeys(m.NLParams) {
			p := m.NLParams[sid]
			fmt.Printf("  %-4s ninc=%d method=%s maxiter=%d conv=%d\n",
				p.SID, p.NInc, p.Method, p.MaxIter, p.Conv)
		}
	}

	if len(m.Steps) > 0 {
		section("Steps")
		for i, st := range m.Steps {
			fmt.Printf("  %s%d%s  %-20s %s\n", Dim, i+1, Reset, st.Label(), stepSummary(st))
		}
	}

	if len(m.Loads) > 0 || len(m.LoadCombos) > 0 {
		section("Loads")
		for _, l := range m.Loads {
			fmt.Printf("  %-9s set %-4s %s  %sowner: %s%s\n",
				l.Kind, l.SID, loadSummary(l), Dim, l.Owner, Reset)
		}
		for _, c := range m.LoadCombos {
			fmt.Printf("  combo     set %-4s scale %g, %d terms\n", c.SID, c.Scale, len(c.Terms))
		}
	}

	if len(m.Properties) > 0 {
		section("Properties")
		for _, id := range sortedKeys(m.Properties) {
			p := m.Properties[id]
			fmt.Printf("  %-4s %-7s %-20s material %s\n", p.ID, p.Kind, nameOrDash(p.Name), refText(p.Material))
		}
	}

	if len(m.Materials) > 0 {
		section("Materials")
		for _, id := range sortedKeys(m.Materials) {
			mat := m.Materials[id]
			fmt.Printf("  %-4s %-13s %s\n", mat.ID, mat.Kind, nameOrDash(mat.Name))
		}
	}

	if len(m.Constraints) > 0 {
		section("Boundary conditions")
		for _, c := range m.Constraints {
			targets := make([]string, len(c.Targets))
			for i, t := range c.Targets {
				targets[i] = refText(t)
			}
			fmt.Printf("  set %-4s dof %-7s value %-8g %s\n", c.SID, c.DOFs, c.Value, strings.Join(targets, " "))
		}
	}
}

// RenderReport prints the diagnostic summary: errors red, warnings
// yellow, unparsed keyword counts dim.
func RenderReport(rep *diag.Report) {
	section("Report")
	fmt.Printf("  %srun %s%s\n", Dim, rep.RunID, Reset)

	for _, e := range rep.Structural {
		fmt.Printf("  %serror:%s line %d: %s\n", Red, Reset, e.Line, e.Reason)
	}
	for _, e := range rep.Decode {
		fmt.Printf("  %serror:%s %s (%s): %s\n", Red, Reset, e.Keyword, e.Lines, e.Reason)
	}
	for _, w := range rep.Warnings {
		fmt.Printf("  %swarning:%s [%s] %s\n", Yellow, Reset, w.Kind, w.Message)
	}
	for _, kw := range sortedKeys(rep.Unparsed) {
		fmt.Printf("  %sunparsed %s ×%d%s\n", Dim, kw, rep.Unparsed[kw], Reset)
	}

	if rep.ErrorCount() == 0 && rep.WarningCount() == 0 {
		fmt.Printf("  %s✓ clean parse%s\n", Green, Reset)
	} else {
		fmt.Printf("  %d error(s), %d warning(s)\n", rep.ErrorCount(), rep.WarningCount())
	}
}

func stepSummary(st *model.Step) string {
	var parts []string
	if st.Subcase != nil && st.Subcase.Sol != 0 {
		parts = append(parts, fmt.Sprintf("sol %d", st.Subcase.Sol))
	}
	if st.Stage != nil {
		parts = append(parts, fmt.Sprintf("stage %d, load step %g", st.Stage.Stage, st.Stage.LoadStep))
	}
	if st.Geo != nil && st.Geo.LargeDisp {
		parts = append(parts, "large disp")
	}
	if st.NLParm != nil {
		parts = append(parts, "nlparm "+refText(*st.NLParm))
	}
	if len(parts) == 0 {
		return Dim + "(no settings)" + Reset
	}
	return strings.Join(parts, ", ")
}

func loadSummary(l *model.Load) string {
	switch l.Kind {
	case model.LoadGravity:
		g := l.Gravity
		return fmt.Sprintf("a=%g n=(%g,%g,%g)", g.Accel, g.N[0], g.N[1], g.N[2])
	case model.LoadPressure:
		p := l.Pressure
		return fmt.Sprintf("p=%g on %s", p.Value, refText(p.Target))
	}
	return ""
}

// refText renders a reference id, flagging dangling ones in red and
// mesh-external ones dim.
func refText(r model.Ref) string {
	switch r.Status {
	case model.RefDangling:
		return fmt.Sprintf("%s%s (dangling)%s", Red, r.ID, Reset)
	case model.RefExternal:
		return fmt.Sprintf("%s%s (mesh)%s", Dim, r.ID, Reset)
	}
	return r.ID
}

func nameOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
