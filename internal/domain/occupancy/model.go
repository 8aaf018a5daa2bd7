package occupancy

// Room statuses. A room is Occupied exactly while it has an open stay.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

// Room is the normalized room inventory entry, keyed by room number.
type Room struct {
	RoomNumber string `db:"room_number" json:"room_number"`
	RoomType   string `db:"room_type" json:"room_type"`
	Status     string `db:"status" json:"status"`
}

// Stay is one patient's occupancy of a room. An open stay has no discharge
// date; at most one open stay exists per room at a time.
type Stay struct {
	ID            int64   `db:"id" json:"id"`
	PatientID     int64   `db:"patient_id" json:"patient_id"`
	RoomNumber    string  `db:"room_number" json:"room_number"`
	AdmissionDate string  `db:"admission_date" json:"admission_date"`
	DischargeDate *string `db:"discharge_date" json:"discharge_date"`
}

// AssignRequest is the payload for placing a patient in a room.
type AssignRequest struct {
	PatientID     int64  `json:"patient_id"`
	RoomNumber    string `json:"room_number"`
	AdmissionDate string `json:"admission_date"`
	DischargeDate string `json:"discharge_date,omitempty"`
}

// RoomAssignment is the denormalized admission record kept alongside the
// normalized room inventory. Its room_number is free text with no room FK.
type RoomAssignment struct {
	ID            int64  `db:"id" json:"id"`
	PatientID     int64  `db:"patient_id" json:"patient_id"`
	AdmissionDate string `db:"admission_date" json:"admission_date"`
	NursingUnit   string `db:"nursing_unit" json:"nursing_unit"`
	RoomNumber    string `db:"room_number" json:"room_number"`
	BedNumber     string `db:"bed_number" json:"bed_number"`
	NumberOfDays  int    `db:"number_of_days" json:"number_of_days"`
	AssignedNurse string `db:"assigned_nurse" json:"assigned_nurse"`
	PatientName   string `db:"patient_name" json:"patient_name,omitempty"`
	FormattedDate string `db:"formatted_date" json:"formatted_date,omitempty"`
}
