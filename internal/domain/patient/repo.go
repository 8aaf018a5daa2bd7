package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetIDByName(ctx context.Context, name string) (int64, bool, error)
	List(ctx context.Context) ([]*Patient, error)
	// Update reports false when no row matched the id.
	Update(ctx context.Context, p *Patient) (bool, error)
	// Delete reports false when no row matched the id.
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// DependentTables returns the names of every dependent table holding at
	// least one row for the patient, in schema order.
	DependentTables(ctx context.Context, id int64) ([]string, error)
}
