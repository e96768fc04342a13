package diagnostics

import (
	"fmt"

	"github.com/HicaroD/razen/internal/lexer/token"
)

type Diag struct {
	Kind    Kind
	Pos     token.Pos
	Args    []string
	Message string
}

func NewDiag(kind Kind, pos token.Pos, args ...string) Diag {
	var message string
	if pos.Filename == "" && pos.IsZero() {
		message = kind.Format(args...)
	} else {
		message = fmt.Sprintf(
			"%s:%d:%d: %s",
			pos.Filename,
			pos.Line,
			pos.Column,
			kind.Format(args...),
		)
	}
	return Diag{Kind: kind, Pos: pos, Args: args, Message: message}
}

func (diag Diag) IsWarning() bool { return diag.Kind.IsWarning() }

func (diag Diag) String() string {
	if diag.IsWarning() {
		return "warning: " + diag.Message
	}
	return "error: " + diag.Message
}
