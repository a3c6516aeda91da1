package lexer

import "strings"

// mnemonics are the sixteen opcode names.
var mnemonics = map[string]bool{
	"mov": true, "cmp": true, "add": true, "sub": true, "lea": true,
	"clr": true, "not": true, "inc": true, "dec": true, "jmp": true,
	"bne": true, "red": true, "prn": true, "jsr": true, "rts": true, "stop": true,
}

// directiveNames are the four directive keywords (without the leading dot).
var directiveNames = map[string]bool{
	"data": true, "string": true, "entry": true, "extern": true,
}

// macroKeywords open and close a macro body.
var macroKeywords = map[string]bool{
	"macr": true, "endmacr": true,
}

// IsMnemonic reports whether name (case-sensitive, always lowercase) names
// one of the sixteen instructions.
func IsMnemonic(name string) bool {
	return mnemonics[name]
}

// IsDirectiveName reports whether name (without a leading dot) is one of
// the four directive keywords.
func IsDirectiveName(name string) bool {
	return directiveNames[strings.TrimPrefix(name, ".")]
}

// IsMacroKeyword reports whether name is "macr" or "endmacr".
func IsMacroKeyword(name string) bool {
	return macroKeywords[name]
}

// IsRegisterName reports whether name is r0..r7, returning the register
// number on success.
func IsRegisterName(name string) (int, bool) {
	if len(name) != 2 || name[0] != 'r' {
		return 0, false
	}
	if name[1] < '0' || name[1] > '7' {
		return 0, false
	}
	return int(name[1] - '0'), true
}

// IsReservedWord reports whether name collides with a mnemonic, directive
// keyword, macro keyword, or register name, and so cannot be used as a
// label, macro, or symbol name.
func IsReservedWord(name string) bool {
	if IsMnemonic(name) || IsMacroKeyword(name) || directiveNames[name] {
		return true
	}
	if _, ok := IsRegisterName(name); ok {
		return true
	}
	return false
}
