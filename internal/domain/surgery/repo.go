package surgery

import "context"

// Repository persists surgeries.
type Repository interface {
	Create(ctx context.Context, s *Surgery) error
	List(ctx context.Context, f Filter) ([]*Surgery, error)
	// GetStatus returns the surgery's current status, or ok=false when no
	// such surgery exists.
	GetStatus(ctx context.Context, id int64) (status string, ok bool, err error)
	SetStatus(ctx context.Context, id int64, status string) error
}
