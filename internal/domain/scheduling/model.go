package scheduling

// Appointment is a visit booking. The doctor field is free text captured from
// the intake form; it is not a staff foreign key.
type Appointment struct {
	ID              int64  `db:"id" json:"id"`
	PatientID       int64  `db:"patient_id" json:"patient_id"`
	Doctor          string `db:"doctor" json:"doctor"`
	AppointmentDate string `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string `db:"appointment_time" json:"appointment_time"`
}

// Filter narrows appointment listings. Zero values mean no constraint.
type Filter struct {
	Doctor string
	Date   string
}
