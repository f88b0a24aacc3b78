package models

// Patient represents a registered patient.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	NIK              string `json:"nik"` // national identity number
	RegistrationDate string `json:"registrationDate"`
	BloodType        string `json:"bloodType"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergencyContact"`
}

func (p Patient) RecordID() string { return p.ID }
