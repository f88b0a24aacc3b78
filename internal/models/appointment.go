package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentWaiting    AppointmentStatus = "waiting"
	AppointmentInProgress AppointmentStatus = "in-progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// Terminal reports whether no further transition may leave this status.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// Appointment links a patient to a doctor and poli for a date/time slot.
// Patient and doctor names are snapshotted at creation time. QueueNumber is
// sequential within (date, poli); cancelled appointments keep their number.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Poli        string            `json:"poli"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Complaint   string            `json:"complaint"`
	Status      AppointmentStatus `json:"status"`
	QueueNumber int               `json:"queueNumber"`
	CompletedAt string            `json:"completedAt,omitempty"`
}

func (a Appointment) RecordID() string { return a.ID }
