// Package image holds the ordered word sequences pass 1 builds — the data
// image and the instruction image — plus the deferred-reference list that
// lets pass 2 fix up forward-referenced operand words without rescanning
// the instruction image for a matching offset.
package image

import "github.com/OctaPokta/AssemblerProject/pkg/word"

// Cell is one word of an image together with its counter offset. Offsets
// are strictly increasing and dense from 0 by construction: Append always
// assigns the next offset.
type Cell struct {
	Offset int
	Word   word.Word
}

// Image is an ordered, dynamically-growing sequence of words keyed by
// offset.
type Image struct {
	cells []Cell
}

// Append adds w at the next offset and returns that offset.
func (im *Image) Append(w word.Word) int {
	offset := len(im.cells)
	im.cells = append(im.cells, Cell{Offset: offset, Word: w})
	return offset
}

// Set overwrites the word at offset in place. Used by pass 2 to fill a
// placeholder planted in pass 1.
func (im *Image) Set(offset int, w word.Word) {
	im.cells[offset].Word = w
}

// At returns the cell at offset.
func (im *Image) At(offset int) Cell {
	return im.cells[offset]
}

// Len returns the current counter value: the number of words appended so
// far.
func (im *Image) Len() int {
	return len(im.cells)
}

// Cells returns the image contents in offset order.
func (im *Image) Cells() []Cell {
	return im.cells
}

// Role distinguishes which operand of an instruction a deferred reference
// resolves, mirroring word.Role.
type Role = word.Role

// DeferredRef is a placeholder word planted in pass 1 for a label not yet
// known, to be filled in pass 2.
type DeferredRef struct {
	Offset int    // IC slot in the instruction image
	Name   string // symbol name to resolve
	Role   Role   // which operand this placeholder belongs to
	Line   int    // source line, for diagnostics
}

// DeferredList accumulates DeferredRef entries in the order pass 1
// encountered them.
type DeferredList struct {
	refs []DeferredRef
}

// Add records a new deferred reference.
func (dl *DeferredList) Add(ref DeferredRef) {
	dl.refs = append(dl.refs, ref)
}

// All returns the deferred references in recording order.
func (dl *DeferredList) All() []DeferredRef {
	return dl.refs
}
