package parser

import (
	"github.com/HicaroD/razen/internal/lexer/token"
)

type cursor struct {
	offset int
	tokens []*token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

func (cursor *cursor) peek() *token.Token {
	return cursor.peekAt(0)
}

// peekAt looks n tokens ahead. Looking past the end yields the EOF token.
func (cursor *cursor) peekAt(n int) *token.Token {
	if cursor.offset+n >= len(cursor.tokens) {
		return cursor.tokens[len(cursor.tokens)-1]
	}
	return cursor.tokens[cursor.offset+n]
}

func (cursor *cursor) next() *token.Token {
	token := cursor.peek()
	if !cursor.isOutOfBound() {
		cursor.offset++
	}
	return token
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) nextIs(expectedKind token.Kind) bool {
	token := cursor.peek()
	return token.Kind == expectedKind
}

// nextIsWord matches a contextual keyword, an identifier with a fixed
// spelling.
func (cursor *cursor) nextIsWord(word string) bool {
	return cursor.peekIsWord(0, word)
}

func (cursor *cursor) peekIsWord(n int, word string) bool {
	tok := cursor.peekAt(n)
	return tok.Kind == token.ID && string(tok.Lexeme) == word
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)-1
}
