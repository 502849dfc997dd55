package renderer

import (
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// keywords are highlighted as whole words in files no lexer claims.
var keywords = []string{
	"fn", "let", "pub", "use", "mod", "match", "if", "else",
	"impl", "struct", "enum", "type", "trait", "return",
}

// keywordLexer marks the keyword list and treats everything else as text.
var keywordLexer = chroma.MustNewLexer(&chroma.Config{
	Name: "rune-keywords",
}, func() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: chroma.Words(`\b`, `\b`, slices.Clone(keywords)...), Type: chroma.Keyword},
			{Pattern: `[\p{L}\p{N}_]+`, Type: chroma.Text},
			{Pattern: `[^\p{L}\p{N}_]+`, Type: chroma.Text},
		},
	}
})

// lexerFor picks a lexer by file name, falling back to keywordLexer.
func lexerFor(fileName string) chroma.Lexer {
	l := lexers.Match(fileName)
	if l == nil {
		l = keywordLexer
	}
	return chroma.Coalesce(l)
}

// tokenTypes tokenizes lines as one block and returns the token type of
// every rune, line by line. Lines the lexer fails on stay plain text.
func tokenTypes(lexer chroma.Lexer, lines []string) [][]chroma.TokenType {
	out := make([][]chroma.TokenType, len(lines))
	if len(lines) == 0 {
		return out
	}

	it, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return out
	}

	row := 0
	for _, tok := range it.Tokens() {
		for _, r := range tok.Value {
			if r == '\n' {
				row++
				continue
			}
			if row < len(out) {
				out[row] = append(out[row], tok.Type)
			}
		}
	}
	return out
}
