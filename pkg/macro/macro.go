// Package macro implements the textual macro-expansion pass: discovering
// macr/endmacr bodies and substituting calls with their content, producing
// the expanded ".am" intermediate text.
//
// Macros here take no parameters and support no conditional assembly — the
// expansion is pure verbatim substitution, unlike a general-purpose
// parameterized macro processor.
package macro

import (
	"strings"

	"github.com/OctaPokta/AssemblerProject/pkg/diag"
	"github.com/OctaPokta/AssemblerProject/pkg/lexer"
)

// Table maps a macro name to its ordered body lines: single insertion,
// repeated lookup, no deletion.
type Table struct {
	bodies map[string][]string
}

func newTable() *Table {
	return &Table{bodies: make(map[string][]string)}
}

// Has reports whether name is a registered macro.
func (t *Table) Has(name string) bool {
	_, ok := t.bodies[name]
	return ok
}

// Body returns the recorded lines for name.
func (t *Table) Body(name string) []string {
	return t.bodies[name]
}

// state is the macro expander's state machine: Outside
// or InsideMacro(name). A type-checked struct (rather than a bare string)
// keeps "outside" and "inside some name" from being confused with ordinary
// string comparisons at call sites.
type state struct {
	insideMacro bool
	name        string
	discard     bool // body of a rejected definition: consumed, never stored
}

// Result is the outcome of expanding one file's source.
type Result struct {
	Expanded []string
	Table    *Table
	Diags    []diag.Diagnostic
}

// Expand runs the macro-expansion pass over raw source lines, returning the
// expanded text, the macro table (consulted later so pass 1 can reject
// macro names used as labels), and any recoverable diagnostics.
func Expand(file string, lines []string) Result {
	table := newTable()
	var expanded []string
	var diags []diag.Diagnostic
	st := state{}

	var bodyAccum []string

	for i, raw := range lines {
		lineNum := i + 1

		if len(raw) > lexer.MaxLineLength() {
			diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
				"line too long (%d chars, max %d)", len(raw), lexer.MaxLineLength()))
			continue
		}

		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, ";") {
			continue
		}

		words := strings.Fields(trimmed)

		if st.insideMacro {
			if len(words) > 0 && words[0] == "endmacr" {
				if len(words) != 1 {
					diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
						"endmacr takes no operands"))
					continue
				}
				if !st.discard {
					table.bodies[st.name] = bodyAccum
				}
				bodyAccum = nil
				st = state{}
				continue
			}
			bodyAccum = append(bodyAccum, raw)
			continue
		}

		if len(words) == 0 {
			expanded = append(expanded, raw)
			continue
		}

		if words[0] == "macr" {
			if len(words) != 2 {
				diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
					"macr requires exactly one name"))
				st = state{insideMacro: true, discard: true}
				continue
			}
			name := words[1]
			if !lexer.IsValidIdentifier(name) {
				diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
					"invalid macro name %q", name))
				st = state{insideMacro: true, name: name, discard: true}
				continue
			}
			if lexer.IsReservedWord(name) {
				diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
					"macro name %q collides with a reserved identifier", name))
				st = state{insideMacro: true, name: name, discard: true}
				continue
			}
			if table.Has(name) {
				diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
					"macro %q already defined", name))
				st = state{insideMacro: true, name: name, discard: true}
				continue
			}
			st = state{insideMacro: true, name: name}
			bodyAccum = nil
			continue
		}

		if words[0] == "endmacr" {
			diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
				"endmacr without matching macr"))
			continue
		}

		if table.Has(words[0]) {
			if len(words) != 1 {
				diags = append(diags, diag.Errorf(file, lineNum, diag.PhaseMacro,
					"macro call %q takes no operands", words[0]))
				continue
			}
			expanded = append(expanded, table.Body(words[0])...)
			continue
		}

		expanded = append(expanded, raw)
	}

	if st.insideMacro {
		diags = append(diags, diag.Errorf(file, len(lines), diag.PhaseMacro,
			"unterminated macro %q at end of file", st.name))
	}

	return Result{Expanded: expanded, Table: table, Diags: diags}
}
