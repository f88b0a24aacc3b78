package storage

// Collection keys of the persisted layout. Changing a record shape requires
// manual migration; there is no schema versioning.
const (
	KeyPatients           = "patients"
	KeyMedicines          = "medicines"
	KeyUsers              = "users"
	KeyAppointments       = "appointments"
	KeyPrescriptions      = "prescriptions"
	KeyMedicalRecords     = "medicalRecords"
	KeyVitalSigns         = "vitalSigns"
	KeyNursingActions     = "nursingActions"
	KeyMedicalNotes       = "medicalNotes"
	KeyInpatients         = "inpatients"
	KeyReferrals          = "referrals"
	KeyHospital           = "hospital"
	KeyPolis              = "polis"
	KeyMedicalActions     = "medicalActions"
	KeyMedicineCategories = "medicineCategories"
	KeyUserSession        = "userSession"
)
