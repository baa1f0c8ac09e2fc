package knowledge

import (
	"context"
	"errors"
	"log"

	"arogya-dispatch-service/internal/ports"
)

// Chain tries knowledge sources in order and returns the first answer.
// A source failing (network error, no answer) moves the chain on; ErrNoAnswer
// is returned only when every source came up empty. The chain itself never
// fails fatally.
type Chain struct {
	sources []ports.KnowledgeSource
}

func NewChain(sources ...ports.KnowledgeSource) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) Ask(ctx context.Context, query string) (ports.Answer, error) {
	for _, s := range c.sources {
		answer, err := s.Ask(ctx, query)
		if err == nil {
			return answer, nil
		}
		if !errors.Is(err, ports.ErrNoAnswer) {
			log.Printf("knowledge source failed: %v", err)
		}
		if ctx.Err() != nil {
			return ports.Answer{}, ctx.Err()
		}
	}
	return ports.Answer{}, ports.ErrNoAnswer
}
