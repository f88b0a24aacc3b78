package models

// ReferralStatus represents the status of an outbound referral
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralAccepted  ReferralStatus = "accepted"
	ReferralCompleted ReferralStatus = "completed"
	ReferralCancelled ReferralStatus = "cancelled"
)

// ReferralUrgency classifies how quickly the destination should act.
type ReferralUrgency string

const (
	UrgencyNormal    ReferralUrgency = "Biasa"
	UrgencyUrgent    ReferralUrgency = "Segera"
	UrgencyEmergency ReferralUrgency = "Darurat"
)

// Referral is an outbound referral to another facility, created when an
// examination concludes with rujukan.
type Referral struct {
	ID                string          `json:"id"`
	PatientID         string          `json:"patientId"`
	PatientName       string          `json:"patientName"`
	AppointmentID     string          `json:"appointmentId"`
	ReferralDate      string          `json:"referralDate"`
	ReferralTime      string          `json:"referralTime"`
	FromHospital      string          `json:"fromHospital"`
	ToHospital        string          `json:"toHospital"`
	ToHospitalAddress string          `json:"toHospitalAddress"`
	ToHospitalPhone   string          `json:"toHospitalPhone"`
	ReferralType      string          `json:"referralType"`
	Diagnosis         string          `json:"diagnosis"`
	Reason            string          `json:"reason"`
	Urgency           ReferralUrgency `json:"urgency"`
	DoctorID          string          `json:"doctorId"`
	DoctorName        string          `json:"doctorName"`
	Status            ReferralStatus  `json:"status"`
	Notes             string          `json:"notes"`
}

func (r Referral) RecordID() string { return r.ID }
