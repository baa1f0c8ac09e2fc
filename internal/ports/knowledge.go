package ports

import (
	"context"
	"errors"
)

// ErrNoAnswer signals a knowledge source had nothing for the query. It is a
// normal outcome that tells the caller to try the next source in its chain.
var ErrNoAnswer = errors.New("no answer available")

// Answer is a natural-language response with provenance.
type Answer struct {
	Text      string
	Source    string
	SourceURL string
}

// KnowledgeSource answers free-text health questions.
type KnowledgeSource interface {
	Ask(ctx context.Context, query string) (Answer, error)
}
