package analyses

import "context"

// Repo persists analysis results.
type Repo interface {
	Create(ctx context.Context, result Result) error
	GetByID(ctx context.Context, userID, analysisID string) (Result, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Result, error)
}
