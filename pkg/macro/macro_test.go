package macro

import (
	"reflect"
	"testing"
)

func TestExpandBasicCall(t *testing.T) {
	src := []string{
		"macr M",
		"mov r1, r2",
		"endmacr",
		"M",
		"M",
	}
	res := Expand("t.as", src)
	if len(res.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diags)
	}
	want := []string{"mov r1, r2", "mov r1, r2"}
	if !reflect.DeepEqual(res.Expanded, want) {
		t.Fatalf("got %v, want %v", res.Expanded, want)
	}
}

func TestExpandIdempotent(t *testing.T) {
	src := []string{"mov r1, r2", "mov r1, r2"}
	res := Expand("t.as", src)
	if !reflect.DeepEqual(res.Expanded, src) {
		t.Fatalf("macro pass on already-expanded text should be byte-identical: got %v", res.Expanded)
	}
}

func TestMacroCallWithExtraWordsErrors(t *testing.T) {
	src := []string{
		"macr M",
		"stop",
		"endmacr",
		"M extra",
	}
	res := Expand("t.as", src)
	if len(res.Diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", res.Diags)
	}
}

func TestDuplicateMacroDefinition(t *testing.T) {
	src := []string{
		"macr M",
		"stop",
		"endmacr",
		"macr M",
		"rts",
		"endmacr",
	}
	res := Expand("t.as", src)
	if len(res.Diags) != 1 {
		t.Fatalf("expected one duplicate-definition diagnostic, got %v", res.Diags)
	}
}

func TestMacroNameCollidesWithMnemonic(t *testing.T) {
	src := []string{"macr mov", "stop", "endmacr"}
	res := Expand("t.as", src)
	if len(res.Diags) != 1 {
		t.Fatalf("expected reserved-name diagnostic, got %v", res.Diags)
	}
}

func TestUnterminatedMacro(t *testing.T) {
	src := []string{"macr M", "stop"}
	res := Expand("t.as", src)
	if len(res.Diags) != 1 {
		t.Fatalf("expected unterminated-macro diagnostic, got %v", res.Diags)
	}
}

func TestCommentLinesAreDropped(t *testing.T) {
	src := []string{"; a comment", "stop"}
	res := Expand("t.as", src)
	want := []string{"stop"}
	if !reflect.DeepEqual(res.Expanded, want) {
		t.Fatalf("got %v, want %v", res.Expanded, want)
	}
}
