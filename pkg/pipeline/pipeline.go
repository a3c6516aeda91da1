// Package pipeline orchestrates one input file through every stage: macro
// expansion, first pass, rebasing, second pass, and output emission. It
// reproduces the three-outcome per-file control flow a batch driver needs:
// a recoverable failure moves on to the next file, a fatal one aborts the
// whole run.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/OctaPokta/AssemblerProject/pkg/config"
	"github.com/OctaPokta/AssemblerProject/pkg/diag"
	"github.com/OctaPokta/AssemblerProject/pkg/macro"
	"github.com/OctaPokta/AssemblerProject/pkg/output"
	"github.com/OctaPokta/AssemblerProject/pkg/pass1"
	"github.com/OctaPokta/AssemblerProject/pkg/pass2"
)

// Result is what running one file through the pipeline produces: the
// outcome, and every diagnostic raised along the way (empty on Ok).
type Result struct {
	File    string
	Outcome diag.Outcome
	Diags   []diag.Diagnostic
}

// Run assembles one file, identified by its base name without extension
// (the ".as" source extension is appended internally, and the ".am"/".ob"/
// ".ent"/".ext" outputs are written alongside it). debug, when true, writes
// a per-pass trace to stderr mirroring the base name being processed.
func Run(base string, cfg config.Config, debug bool) Result {
	res := Result{File: base}

	trace := func(format string, args ...interface{}) {
		if debug {
			fmt.Fprintf(os.Stderr, "[hasm] %s: "+format+"\n", append([]interface{}{base}, args...)...)
		}
	}

	raw, err := os.ReadFile(base + ".as")
	if err != nil {
		res.Outcome = diag.Recoverable
		res.Diags = append(res.Diags, diag.Errorf(base, 0, diag.PhaseIO, "cannot open input: %s", err))
		return res
	}
	lines := splitLines(string(raw))

	trace("macro pass")
	mres := macro.Expand(base, lines)
	if len(mres.Diags) > 0 {
		res.Outcome = diag.Recoverable
		res.Diags = mres.Diags
		return res
	}

	if err := writeLines(base+".am", mres.Expanded); err != nil {
		return ioFailure(res, base, err)
	}

	trace("pass 1")
	ctx := pass1.New(base, mres.Table, cfg.SizeLimit)
	ctx.Run(mres.Expanded)
	if !ctx.Diags.OK() {
		res.Outcome = diag.Recoverable
		res.Diags = ctx.Diags.All()
		return res
	}

	ctx.Symbols.RebaseData(ctx.InstrImage.Len(), cfg.LoadBase)

	trace("pass 2")
	p2 := pass2.Run(ctx)
	if !p2.Diags.OK() {
		res.Outcome = diag.Recoverable
		res.Diags = p2.Diags.All()
		return res
	}

	trace("emit output")
	if err := emit(base, ctx, p2, cfg); err != nil {
		return ioFailure(res, base, err)
	}

	res.Outcome = diag.Ok
	return res
}

func emit(base string, ctx *pass1.Context, p2 pass2.Result, cfg config.Config) error {
	obFile, err := os.Create(base + ".ob")
	if err != nil {
		return err
	}
	defer obFile.Close()
	if err := output.WriteObject(obFile, ctx.InstrImage, ctx.DataImage, cfg.LoadBase); err != nil {
		return err
	}

	if entries := ctx.Symbols.Entries(); len(entries) > 0 {
		entFile, err := os.Create(base + ".ent")
		if err != nil {
			return err
		}
		defer entFile.Close()
		if _, err := output.WriteEntries(entFile, ctx.Symbols); err != nil {
			return err
		}
	}

	if len(p2.ExternalUses) > 0 {
		extFile, err := os.Create(base + ".ext")
		if err != nil {
			return err
		}
		defer extFile.Close()
		if _, err := output.WriteExternals(extFile, p2.ExternalUses, cfg.LoadBase); err != nil {
			return err
		}
	}
	return nil
}

// ioFailure classifies a write/open error: a disk-full condition is the one
// concrete case modeled as Fatal (a resource exhaustion that will recur for
// every remaining file in the batch), everything else aborts only the
// current file.
func ioFailure(res Result, base string, err error) Result {
	if errors.Is(err, syscall.ENOSPC) {
		res.Outcome = diag.Fatal
		res.Diags = []diag.Diagnostic{diag.Errorf(base, 0, diag.PhaseIO, "no space left on device: %s", err)}
		return res
	}
	res.Outcome = diag.Recoverable
	res.Diags = []diag.Diagnostic{diag.Errorf(base, 0, diag.PhaseIO, "cannot write output: %s", err)}
	return res
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
