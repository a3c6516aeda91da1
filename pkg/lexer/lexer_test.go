package lexer

import "testing"

func check(t *testing.T, got, want any) {
	t.Helper()
	if got != want {
		t.Errorf("got %[1]v (a %[1]T), want %[2]v (a %[2]T)", got, want)
	}
}

func TestTokenizeLabelAndMnemonic(t *testing.T) {
	toks, err := Tokenize("LEN: .data 100")
	check(t, err, nil)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	check(t, toks[0].Kind, KindLabel)
	check(t, toks[0].Text, "LEN")
	check(t, toks[1].Kind, KindDirective)
	check(t, toks[1].Text, ".data")
	check(t, toks[2].Kind, KindWord)
	check(t, toks[2].Text, "100")
}

func TestTokenizeOperands(t *testing.T) {
	toks, err := Tokenize("mov r3, r5")
	check(t, err, nil)
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	check(t, toks[0].Text, "mov")
	check(t, toks[1].Text, "r3")
	check(t, toks[2].Kind, KindComma)
	check(t, toks[3].Text, "r5")
}

func TestTokenizeString(t *testing.T) {
	toks, err := Tokenize(`STR: .string "abc"`)
	check(t, err, nil)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	check(t, toks[2].Kind, KindString)
	check(t, toks[2].Text, `"abc"`)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`.string "abc`)
	if _, ok := err.(ErrUnterminatedString); !ok {
		t.Fatalf("expected ErrUnterminatedString, got %v", err)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize("   ; a whole comment line")
	check(t, err, nil)
	if len(toks) != 1 || toks[0].Kind != KindComment {
		t.Fatalf("expected single comment token, got %v", toks)
	}
}

func TestTokenizeLineTooLong(t *testing.T) {
	long := make([]byte, 81)
	for i := range long {
		long[i] = 'a'
	}
	_, err := Tokenize(string(long))
	if _, ok := err.(ErrLineTooLong); !ok {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"LEN", true},
		{"a1", true},
		{"1abc", false},
		{"", false},
		{makeName(31), true},
		{makeName(32), false},
	}
	for _, c := range cases {
		if got := IsValidIdentifier(c.name); got != c.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func makeName(n int) string {
	b := make([]byte, n)
	b[0] = 'a'
	for i := 1; i < n; i++ {
		b[i] = 'b'
	}
	return string(b)
}

func TestIsRegisterName(t *testing.T) {
	if n, ok := IsRegisterName("r3"); !ok || n != 3 {
		t.Errorf("IsRegisterName(r3) = %d, %v; want 3, true", n, ok)
	}
	if _, ok := IsRegisterName("r8"); ok {
		t.Errorf("IsRegisterName(r8) should be false")
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, name := range []string{"mov", "r0", "macr", "endmacr", "data", "string", "entry", "extern"} {
		if !IsReservedWord(name) {
			t.Errorf("IsReservedWord(%q) = false, want true", name)
		}
	}
	if IsReservedWord("MYLABEL") {
		t.Errorf("IsReservedWord(MYLABEL) = true, want false")
	}
}
