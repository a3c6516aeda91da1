// Package pass2 resolves every deferred label reference pass 1 left behind,
// applies .entry promotions, and collects the external-use records that the
// .ext file needs — in that order, and only after the symbol table has been
// rebased against the final instruction counter and the load base.
package pass2

import (
	"github.com/OctaPokta/AssemblerProject/pkg/diag"
	"github.com/OctaPokta/AssemblerProject/pkg/image"
	"github.com/OctaPokta/AssemblerProject/pkg/pass1"
	"github.com/OctaPokta/AssemblerProject/pkg/symtab"
	"github.com/OctaPokta/AssemblerProject/pkg/word"
)

// ExternalUse records one instruction word that referenced an external
// symbol, in ascending address order, for the .ext writer.
type ExternalUse struct {
	Name    string
	Address int
}

// Result is everything pass 2 produces from a pass1.Context.
type Result struct {
	ExternalUses []ExternalUse
	Diags        diag.Bag
}

// Run resolves c's deferred references against c's (already rebased) symbol
// table, applies every recorded .entry declaration, and returns the
// external-use list. c.Symbols.RebaseData must have already run; Run does
// not rebase on its own, since rebasing is a one-shot operation on the
// file's symbol table and doing it twice would double-count the load base.
func Run(c *pass1.Context) Result {
	var res Result

	for _, ref := range c.Deferred.All() {
		resolveOne(c, &res, ref)
	}

	for _, decl := range c.EntryDecls {
		if err := c.Symbols.PromoteToEntry(decl.Name); err != nil {
			res.Diags.Add(diag.Errorf(c.File, decl.Line, diag.PhasePass2, "%s", err.Error()))
		}
	}

	sortExternalUses(res.ExternalUses)
	return res
}

func resolveOne(c *pass1.Context, res *Result, ref image.DeferredRef) {
	sym, ok := c.Symbols.Lookup(ref.Name)
	if !ok {
		res.Diags.Add(diag.Errorf(c.File, ref.Line, diag.PhasePass2, "undefined symbol %q", ref.Name))
		return
	}

	if sym.Kind == symtab.External {
		c.InstrImage.Set(ref.Offset, word.AddressWord(0, word.AreExternal))
		res.ExternalUses = append(res.ExternalUses, ExternalUse{Name: ref.Name, Address: ref.Offset})
		return
	}
	c.InstrImage.Set(ref.Offset, word.AddressWord(sym.Value, word.AreRelative))
}

// sortExternalUses orders by ascending address; the list is built in
// deferred-reference order, which is instruction order, but two files or a
// pathological deferred list are not guaranteed to already be sorted, so an
// explicit insertion sort over what is typically a short list keeps the
// output writer simple and dependency-free.
func sortExternalUses(uses []ExternalUse) {
	for i := 1; i < len(uses); i++ {
		for j := i; j > 0 && uses[j-1].Address > uses[j].Address; j-- {
			uses[j-1], uses[j] = uses[j], uses[j-1]
		}
	}
}
