package models

// HoursRange is a daily opening window.
type HoursRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OperationalHours describes the clinic's opening schedule.
type OperationalHours struct {
	Weekdays  HoursRange `json:"weekdays"`
	Saturday  HoursRange `json:"saturday"`
	Sunday    HoursRange `json:"sunday"`
	Emergency string     `json:"emergency"`
}

// Hospital is the clinic's own profile (single record).
type Hospital struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Head             string           `json:"head"`
	OperationalHours OperationalHours `json:"operationalHours"`
}

func (h Hospital) RecordID() string { return h.ID }

// Poli is an outpatient clinic department/specialty.
type Poli struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Doctor   string `json:"doctor"`
	Schedule string `json:"schedule"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

func (p Poli) RecordID() string { return p.ID }

// MedicalAction is a billable procedure from the admin-managed tariff list.
// The code doubles as the record id.
type MedicalAction struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Fee  int    `json:"fee"`
}

func (a MedicalAction) RecordID() string { return a.Code }
