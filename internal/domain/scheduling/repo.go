package scheduling

import "context"

// Repository persists appointments.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context, f Filter) ([]*Appointment, error)
}
