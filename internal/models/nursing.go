package models

// VitalSign is a nurse-authored observation taken before an examination.
type VitalSign struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patientId"`
	PatientName   string  `json:"patientName"`
	Date          string  `json:"date"`
	BloodPressure string  `json:"bloodPressure"`
	HeartRate     int     `json:"heartRate"`
	Temperature   float64 `json:"temperature"`
	Respiration   int     `json:"respiration"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Complaint     string  `json:"complaint"`
	Notes         string  `json:"notes"`
	NurseID       string  `json:"nurseId"`
	NurseName     string  `json:"nurseName"`
}

func (v VitalSign) RecordID() string { return v.ID }

// NursingActionStatus represents the status of a nursing action
type NursingActionStatus string

const (
	NursingPending   NursingActionStatus = "pending"
	NursingCompleted NursingActionStatus = "completed"
	NursingCancelled NursingActionStatus = "cancelled"
)

// NursingAction is a care task performed by a nurse for a patient.
// Completing it has no side effects on other entities.
type NursingAction struct {
	ID          string              `json:"id"`
	PatientID   string              `json:"patientId"`
	PatientName string              `json:"patientName"`
	Date        string              `json:"date"`
	ActionType  string              `json:"actionType"`
	Description string              `json:"description"`
	NurseID     string              `json:"nurseId"`
	NurseName   string              `json:"nurseName"`
	Status      NursingActionStatus `json:"status"`
}

func (a NursingAction) RecordID() string { return a.ID }
