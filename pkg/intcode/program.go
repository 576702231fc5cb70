package intcode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Program is an immutable sequence of Intcode words. The zero value is an
// empty program.
type Program struct {
	words []int64
}

// NewProgram creates a program from words. The slice is copied.
func NewProgram(words ...int64) Program {
	return Program{words: append([]int64(nil), words...)}
}

// Parse parses comma-separated decimal integers. Whitespace around each
// token is ignored, so a trailing newline is accepted.
func Parse(text string) (Program, error) {
	tokens := strings.Split(text, ",")
	words := make([]int64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Program{}, &ParseError{Index: i, Token: tok, Err: errors.New("empty token")}
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Program{}, &ParseError{Index: i, Token: tok, Err: err}
		}
		words = append(words, n)
	}
	return Program{words: words}, nil
}

// Read reads and parses a whole program from r.
func Read(r io.Reader) (Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Program{}, &ReadError{Err: err}
	}
	return Parse(string(data))
}

// Load reads and parses the program stored in the file at path.
func Load(path string) (Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return Program{}, &ReadError{Err: err}
	}
	defer f.Close()

	prog, err := Read(f)
	if err != nil {
		return Program{}, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// Len returns the number of words in the program.
func (p Program) Len() int {
	return len(p.words)
}

// At returns the word at addr.
func (p Program) At(addr int64) (int64, error) {
	if addr < 0 || addr >= int64(len(p.words)) {
		return 0, &IndexError{PC: -1, Index: addr}
	}
	return p.words[addr], nil
}

// Words returns a copy of the program's words.
func (p Program) Words() []int64 {
	return append([]int64(nil), p.words...)
}

// Patch returns a new program with the word at each address of patches
// replaced. The receiver is left untouched.
func (p Program) Patch(patches map[int64]int64) (Program, error) {
	words := p.Words()
	for addr, value := range patches {
		if addr < 0 || addr >= int64(len(words)) {
			return Program{}, &IndexError{PC: -1, Index: addr}
		}
		words[addr] = value
	}
	return Program{words: words}, nil
}

// String renders the program in its text format.
func (p Program) String() string {
	var sb strings.Builder
	for i, w := range p.words {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(w, 10))
	}
	return sb.String()
}
