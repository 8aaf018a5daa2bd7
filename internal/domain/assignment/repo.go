package assignment

import "context"

// DoctorRepository persists doctor assignments.
type DoctorRepository interface {
	Create(ctx context.Context, a *DoctorAssignment) error
	List(ctx context.Context) ([]*DoctorAssignment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NurseRepository persists nurse assignments.
type NurseRepository interface {
	Create(ctx context.Context, a *NurseAssignment) error
	List(ctx context.Context) ([]*NurseAssignment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
