package nlpsvc

import "context"

// INLPService is the narrow contract the parser needs from the NLP sidecar:
// noun tokens for asset fallback and DATE entities for date resolution.
type INLPService interface {
	NounTokens(ctx context.Context, text string) ([]Token, error)
	DateEntities(ctx context.Context, text string) ([]Entity, error)
}
