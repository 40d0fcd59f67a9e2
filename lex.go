package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// Delimiters contains the runes which always form single-rune tokens.
const Delimiters = "+-*/=()"

// Operators contains the binary operators. They are a subset of Delimiters.
const Operators = "+-*/"

// runestrs splits an ASCII string into one string per rune.
func runestrs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var delimstrs = runestrs(Delimiters)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	toks []string
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// flush appends the accumulated run, if any, as a token.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.toks = append(l.toks, l.buf.String())
	l.buf.Reset()
}

// scan reads the entire input. Numbers and names are not told apart here;
// any run of runes between delimiters and spaces is one token.
func (l *lexer) scan() error {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			l.flush()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if unicode.IsSpace(r) {
			// Spaces are dropped without ending the current run.
			continue
		}
		if k := strings.IndexRune(Delimiters, r); k >= 0 {
			l.flush()
			l.toks = append(l.toks, delimstrs[k])
			continue
		}
		l.buf.WriteRune(r)
	}
}

// TokenizeReader splits the contents of src into tokens. The only errors are
// those returned by src other than io.EOF, in which case the tokens scanned
// so far are returned along with the error.
func TokenizeReader(src io.RuneScanner) ([]string, error) {
	l := lex(src)
	err := l.scan()
	return l.toks, err
}

// Tokenize splits a line into tokens. Each of the runes in Delimiters is its
// own token, whitespace is discarded, and every other run of runes forms one
// token. The result never contains empty strings.
func Tokenize(src string) []string {
	// A strings.Reader never fails.
	toks, _ := TokenizeReader(strings.NewReader(src))
	return toks
}
