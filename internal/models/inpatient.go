package models

// InpatientStatus represents the status of an inpatient admission
type InpatientStatus string

const (
	InpatientActive      InpatientStatus = "active"
	InpatientDischarged  InpatientStatus = "discharged"
	InpatientTransferred InpatientStatus = "transferred"
)

// Room types offered by the clinic ward.
const (
	RoomVIP    = "VIP"
	RoomClass1 = "Kelas 1"
	RoomClass2 = "Kelas 2"
	RoomClass3 = "Kelas 3"
)

// Inpatient is an admission record created when an examination concludes
// with rawat_inap. Discharge stamps DischargeDate/DischargeTime; TotalDays
// is a stored estimate, never recomputed.
type Inpatient struct {
	ID            string          `json:"id"`
	PatientID     string          `json:"patientId"`
	PatientName   string          `json:"patientName"`
	AppointmentID string          `json:"appointmentId"`
	AdmissionDate string          `json:"admissionDate"`
	AdmissionTime string          `json:"admissionTime"`
	RoomNumber    string          `json:"roomNumber"`
	RoomType      string          `json:"roomType"`
	Diagnosis     string          `json:"diagnosis"`
	DoctorID      string          `json:"doctorId"`
	DoctorName    string          `json:"doctorName"`
	Status        InpatientStatus `json:"status"`
	DischargeDate string          `json:"dischargeDate,omitempty"`
	DischargeTime string          `json:"dischargeTime,omitempty"`
	TotalDays     int             `json:"totalDays,omitempty"`
	Notes         string          `json:"notes"`
}

func (i Inpatient) RecordID() string { return i.ID }
