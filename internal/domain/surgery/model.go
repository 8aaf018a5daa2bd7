package surgery

// Surgery statuses. Completed and Cancelled are terminal.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Surgery is a scheduled procedure. Listings and the create response carry
// the joined patient and surgeon names plus a preformatted time range.
type Surgery struct {
	ID          int64  `db:"id" json:"id"`
	PatientID   int64  `db:"patient_id" json:"patient_id"`
	PatientName string `db:"patient_name" json:"patient_name,omitempty"`
	SurgeonID   int64  `db:"surgeon_id" json:"surgeon_id"`
	SurgeonName string `db:"surgeon_name" json:"surgeon_name,omitempty"`
	SurgeryType string `db:"surgery_type" json:"surgery_type"`
	RoomNumber  string `db:"room_number" json:"room_number"`
	SurgeryDate string `db:"surgery_date" json:"surgery_date"`
	StartTime   string `db:"start_time" json:"start_time"`
	EndTime     string `db:"end_time" json:"end_time"`
	Notes       string `db:"notes" json:"notes"`
	Status      string `db:"status" json:"status"`
	TimeRange   string `db:"time_range" json:"time_range,omitempty"`
}

// Filter narrows surgery listings. Zero values mean no constraint.
type Filter struct {
	PatientID  int64
	SurgeonID  int64
	RoomNumber string
	Date       string
	Status     string
}
