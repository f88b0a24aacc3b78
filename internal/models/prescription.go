package models

// PrescriptionStatus represents the status of a prescription
type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionDispensed PrescriptionStatus = "dispensed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

// PrescriptionMedicine is one line of a prescription. MedicineName is a
// snapshot of the medicine's name at prescription time.
type PrescriptionMedicine struct {
	MedicineID   string `json:"medicineId"`
	MedicineName string `json:"medicineName"`
	Quantity     int    `json:"quantity"`
	Dosage       string `json:"dosage"`
}

// Prescription holds the ordered medicine lines issued for an appointment.
// Dispensing is the only transition that also mutates medicine stock, and it
// is all-or-nothing across the lines.
type Prescription struct {
	ID            string                 `json:"id"`
	AppointmentID string                 `json:"appointmentId"`
	PatientID     string                 `json:"patientId"`
	PatientName   string                 `json:"patientName"`
	DoctorID      string                 `json:"doctorId"`
	DoctorName    string                 `json:"doctorName"`
	Date          string                 `json:"date"`
	Medicines     []PrescriptionMedicine `json:"medicines"`
	Status        PrescriptionStatus     `json:"status"`
	Notes         string                 `json:"notes"`
	DispensedAt   string                 `json:"dispensedAt,omitempty"`
}

func (p Prescription) RecordID() string { return p.ID }
