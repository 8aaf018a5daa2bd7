package occupancy

import "context"

// RoomRepository persists the normalized room inventory.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	List(ctx context.Context, status string) ([]*Room, error)
	// Status returns the room's current status, or ok=false when no such
	// room exists.
	Status(ctx context.Context, roomNumber string) (status string, ok bool, err error)
	// Claim flips an Available room to Occupied in a single conditional
	// update. It reports false when the room was not Available, which is
	// how concurrent claims for the same room lose the race.
	Claim(ctx context.Context, roomNumber string) (bool, error)
	// Release flips a room back to Available.
	Release(ctx context.Context, roomNumber string) error
}

// StayRepository persists patient room stays.
type StayRepository interface {
	Create(ctx context.Context, s *Stay) error
	// OpenByPatient returns the patient's open stay, or ok=false when the
	// patient does not currently hold a room.
	OpenByPatient(ctx context.Context, patientID int64) (*Stay, bool, error)
	// Close stamps the stay's discharge date with the current date.
	Close(ctx context.Context, stayID int64) (dischargeDate string, err error)
}

// AssignmentRepository persists the denormalized admission records.
type AssignmentRepository interface {
	Create(ctx context.Context, a *RoomAssignment) error
	List(ctx context.Context, patientID int64) ([]*RoomAssignment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
