// Package output writes the three artifacts a successfully assembled file
// produces: the object file (.ob), the entries file (.ent), and the
// externals file (.ext).
package output

import (
	"fmt"
	"io"

	"github.com/OctaPokta/AssemblerProject/pkg/image"
	"github.com/OctaPokta/AssemblerProject/pkg/pass2"
	"github.com/OctaPokta/AssemblerProject/pkg/symtab"
	"github.com/OctaPokta/AssemblerProject/pkg/word"
)

// WriteObject writes the object file: a header line with the instruction
// and data word counts, then one "%04d %05o" line per word — instructions
// first, immediately followed by data at the next addresses. loadBase is
// the configured address the instruction image starts at.
func WriteObject(w io.Writer, instr, data image.Image, loadBase int) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", instr.Len(), data.Len()); err != nil {
		return err
	}
	addr := loadBase
	for _, cell := range instr.Cells() {
		if _, err := fmt.Fprintf(w, "%04d %05o\n", addr, cell.Word&word.Mask); err != nil {
			return err
		}
		addr++
	}
	for _, cell := range data.Cells() {
		if _, err := fmt.Fprintf(w, "%04d %05o\n", addr, cell.Word&word.Mask); err != nil {
			return err
		}
		addr++
	}
	return nil
}

// WriteEntries writes one "<name> <address>" line per Entry-kind symbol, in
// declaration order. Returns false without writing anything if there are no
// entries — callers should skip creating the .ent file in that case.
func WriteEntries(w io.Writer, symbols *symtab.Table) (bool, error) {
	entries := symbols.Entries()
	if len(entries) == 0 {
		return false, nil
	}
	for _, sym := range entries {
		if _, err := fmt.Fprintf(w, "%s %04d\n", sym.Name, sym.Value); err != nil {
			return true, err
		}
	}
	return true, nil
}

// WriteExternals writes one "<name> <4-digit address>" line per external
// use, already in ascending-address order. loadBase is the same configured
// base WriteObject used to place the instruction image. Returns false
// without writing anything if there are no external uses.
func WriteExternals(w io.Writer, uses []pass2.ExternalUse, loadBase int) (bool, error) {
	if len(uses) == 0 {
		return false, nil
	}
	for _, use := range uses {
		if _, err := fmt.Fprintf(w, "%s %04d\n", use.Name, loadBase+use.Address); err != nil {
			return true, err
		}
	}
	return true, nil
}
