package staff

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	// ListByRoles returns the trimmed directory rows for the given roles,
	// ordered by last name then first name.
	ListByRoles(ctx context.Context, roles ...string) ([]*DirectoryEntry, error)
	Update(ctx context.Context, m *Member) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// NameWithRoles returns the member's full name when their role is one of
	// roles; ok is false when no such row exists.
	NameWithRoles(ctx context.Context, id int64, roles ...string) (name string, ok bool, err error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s *Shift) error
	// List returns all shifts joined with staff, newest shift date first.
	List(ctx context.Context) ([]*ShiftDetail, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
