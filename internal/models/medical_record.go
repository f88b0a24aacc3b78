package models

// CareStatus determines the follow-on record created when an examination is
// completed: outpatient care, inpatient admission, or referral.
type CareStatus string

const (
	CareOutpatient CareStatus = "rawat_jalan"
	CareInpatient  CareStatus = "rawat_inap"
	CareReferral   CareStatus = "rujukan"
)

// RecordedVitals are the vital signs captured during an examination.
// Pointers distinguish "not measured" from zero readings.
type RecordedVitals struct {
	BloodPressure string   `json:"bloodPressure,omitempty"`
	HeartRate     *int     `json:"heartRate,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Respiration   *int     `json:"respiration,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
}

// FollowUp is an optional return visit noted on a medical record.
type FollowUp struct {
	Date  string `json:"date,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// CareDetails carries the branch-specific fields of the chosen care status.
type CareDetails struct {
	RoomNumber       string `json:"roomNumber,omitempty"`
	RoomType         string `json:"roomType,omitempty"`
	ReferralHospital string `json:"referralHospital,omitempty"`
	ReferralReason   string `json:"referralReason,omitempty"`
}

// MedicalRecord is the clinical documentation produced by completing an
// examination. A completed appointment has exactly one medical record.
type MedicalRecord struct {
	ID              string         `json:"id"`
	PatientID       string         `json:"patientId"`
	PatientName     string         `json:"patientName"`
	AppointmentID   string         `json:"appointmentId"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	Complaint       string         `json:"complaint"`
	VitalSigns      RecordedVitals `json:"vitalSigns"`
	Examination     string         `json:"examination"`
	Diagnosis       string         `json:"diagnosis"`
	Treatment       string         `json:"treatment"`
	Notes           string         `json:"notes"`
	Recommendations string         `json:"recommendations"`
	FollowUp        FollowUp       `json:"followUp"`
	DoctorID        string         `json:"doctorId"`
	DoctorName      string         `json:"doctorName"`
	Status          string         `json:"status"`
	CareStatus      CareStatus     `json:"careStatus"`
	CareDetails     CareDetails    `json:"careDetails"`
}

func (r MedicalRecord) RecordID() string { return r.ID }

// MedicalNote is a doctor's free-text note on a patient, written alongside
// the medical record at examination completion or standalone.
type MedicalNote struct {
	ID              string `json:"id"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	Date            string `json:"date"`
	Diagnosis       string `json:"diagnosis"`
	Notes           string `json:"notes"`
	Recommendations string `json:"recommendations"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
}

func (n MedicalNote) RecordID() string { return n.ID }
