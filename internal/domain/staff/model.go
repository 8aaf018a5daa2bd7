package staff

import "time"

// Role values with filtering semantics. The column stays free text; these are
// the values the directory endpoints and the surgery scheduler key on.
const (
	RoleNurse     = "Nurse"
	RolePhysician = "Physician"
	RoleSurgeon   = "Surgeon"
)

// Member maps to the staff table.
type Member struct {
	ID           int64     `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Age          int       `db:"age" json:"age"`
	EmploymentNo string    `db:"employment_no" json:"employment_no"`
	SSN          string    `db:"ssn" json:"ssn"`
	Street       string    `db:"street" json:"street"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	Zip          string    `db:"zip" json:"zip"`
	Gender       string    `db:"gender" json:"gender"`
	Phone        string    `db:"phone" json:"phone"`
	EmpType      string    `db:"emp_type" json:"emp_type"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DirectoryEntry is the trimmed row returned by the nurse and doctor lists.
type DirectoryEntry struct {
	ID           int64  `db:"id" json:"id"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	EmploymentNo string `db:"employment_no" json:"employment_no,omitempty"`
	Role         string `db:"role" json:"role,omitempty"`
}

// Shift maps to the shifts table. Dates travel as YYYY-MM-DD strings; the
// database casts on the way in and formats on the way out.
type Shift struct {
	ID        int64  `db:"id" json:"id"`
	StaffID   int64  `db:"staff_id" json:"staff_id"`
	ShiftType string `db:"shift_type" json:"shift_type"`
	ShiftDate string `db:"shift_date" json:"shift_date"`
}

// ShiftDetail is a shift row joined with the staff member working it.
type ShiftDetail struct {
	ID            int64  `db:"id" json:"id"`
	StaffID       int64  `db:"staff_id" json:"staff_id"`
	StaffName     string `db:"staff_name" json:"staff_name"`
	Role          string `db:"role" json:"role"`
	ShiftType     string `db:"shift_type" json:"shift_type"`
	ShiftDate     string `db:"shift_date" json:"shift_date"`
	FormattedDate string `db:"formatted_date" json:"formatted_date"`
}
