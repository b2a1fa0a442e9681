package parser

import "context"

// UseCase is the public contract of the parsing domain.
type UseCase interface {
	// ParseBatch parses every non-blank line of the input independently.
	ParseBatch(ctx context.Context, ip ParseBatchInput) (ParseBatchOutput, error)
}
