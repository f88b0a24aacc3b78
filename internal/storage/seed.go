package storage

import (
	"clinic-app-server/internal/models"
)

// Seed initializes any absent collection with its default data, mirroring the
// first-run behavior of the original system. Existing collections are left
// untouched, so it is safe to call on every startup.
func Seed(s *Store) error {
	if err := seedCollection(s, KeyPatients, defaultPatients()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyMedicines, defaultMedicines()); err != nil {
		return err
	}
	users, err := defaultUsers()
	if err != nil {
		return err
	}
	if err := seedCollection(s, KeyUsers, users); err != nil {
		return err
	}
	if err := seedCollection(s, KeyAppointments, defaultAppointments()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyPrescriptions, defaultPrescriptions()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyMedicalRecords, defaultMedicalRecords()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyHospital, defaultHospital()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyPolis, defaultPolis()); err != nil {
		return err
	}
	if err := seedCollection(s, KeyMedicineCategories, defaultMedicineCategories()); err != nil {
		return err
	}
	return seedCollection(s, KeyMedicalActions, defaultMedicalActions())
}

func seedCollection[T Record](s *Store, key string, items []T) error {
	exists, err := s.Has(key)
	if err != nil || exists {
		return err
	}
	return s.PutSingle(key, items)
}

func defaultPatients() []models.Patient {
	return []models.Patient{
		{
			ID: "001234", Name: "Budi Santoso", Age: 45, Gender: "Laki-laki",
			Address: "Jl. Merdeka No. 123", Phone: "081234567890", Email: "budi@email.com",
			NIK: "3201234567890123", RegistrationDate: "2024-01-15", BloodType: "O",
			Allergies: "Tidak ada", EmergencyContact: "Siti Santoso - 081234567891",
		},
		{
			ID: "001235", Name: "Siti Aminah", Age: 32, Gender: "Perempuan",
			Address: "Jl. Sudirman No. 456", Phone: "081234567891", Email: "siti@email.com",
			NIK: "3201234567890124", RegistrationDate: "2024-01-15", BloodType: "A",
			Allergies: "Penisilin", EmergencyContact: "Ahmad Aminah - 081234567892",
		},
		{
			ID: "001236", Name: "Ahmad Fauzi", Age: 28, Gender: "Laki-laki",
			Address: "Jl. Thamrin No. 789", Phone: "081234567892", Email: "ahmad@email.com",
			NIK: "3201234567890125", RegistrationDate: "2024-01-15", BloodType: "B",
			Allergies: "Tidak ada", EmergencyContact: "Dewi Fauzi - 081234567893",
		},
	}
}

func defaultMedicines() []models.Medicine {
	return []models.Medicine{
		{
			ID: "MED001", Name: "Paracetamol 500mg", Stock: 150, MinStock: 50, Price: 5000,
			Unit: "strip", Category: "Analgesik", Description: "Obat pereda nyeri dan penurun demam",
			Expiry: "2025-12-31",
		},
		{
			ID: "MED002", Name: "Amoxicillin 500mg", Stock: 75, MinStock: 30, Price: 15000,
			Unit: "strip", Category: "Antibiotik", Description: "Antibiotik untuk infeksi bakteri",
			Expiry: "2025-06-30",
		},
		{
			ID: "MED003", Name: "OBH Combi", Stock: 25, MinStock: 20, Price: 12000,
			Unit: "botol", Category: "Batuk & Flu", Description: "Obat batuk kombinasi",
			Expiry: "2025-03-31",
		},
		{
			ID: "MED004", Name: "Antasida", Stock: 200, MinStock: 40, Price: 8000,
			Unit: "tablet", Category: "Pencernaan", Description: "Obat maag dan asam lambung",
			Expiry: "2025-09-30",
		},
	}
}

func defaultUsers() ([]models.User, error) {
	users := []models.User{
		{
			ID: "USR001", Username: "admin123", Name: "Administrator", Role: models.RoleAdmin,
			Email: "admin@puskesmas.go.id", Phone: "081234567890", Status: models.UserActive,
		},
		{
			ID: "USR002", Username: "dokter123", Name: "dr. Budi Santoso", Role: models.RoleDoctor,
			Email: "budi@puskesmas.go.id", Phone: "081234567891", Poli: "Poli Umum",
			Schedule: "Senin - Jumat, 08:00 - 15:00", License: "STR123456789", Status: models.UserActive,
		},
		{
			ID: "USR003", Username: "perawat123", Name: "Sari Perawat", Role: models.RoleNurse,
			Email: "sari@puskesmas.go.id", Phone: "081234567892", Shift: "Pagi",
			License: "SIKP123456789", Status: models.UserActive,
		},
		{
			ID: "USR004", Username: "apoteker123", Name: "Dewi Apoteker", Role: models.RolePharmacist,
			Email: "dewi@puskesmas.go.id", Phone: "081234567893", License: "SIPA123456789",
			Status: models.UserActive,
		},
	}
	// Default credential: password equals username.
	for i := range users {
		if err := users[i].SetPassword(users[i].Username); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func defaultAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID: "APT001", PatientID: "001234", PatientName: "Budi Santoso",
			DoctorID: "USR002", DoctorName: "dr. Budi Santoso", Poli: "Poli Umum",
			Date: "2024-01-15", Time: "08:30", Complaint: "Demam dan batuk",
			Status: models.AppointmentCompleted, QueueNumber: 1,
		},
		{
			ID: "APT002", PatientID: "001235", PatientName: "Siti Aminah",
			DoctorID: "USR002", DoctorName: "dr. Budi Santoso", Poli: "Poli Umum",
			Date: "2024-01-15", Time: "09:00", Complaint: "Sakit kepala",
			Status: models.AppointmentInProgress, QueueNumber: 2,
		},
	}
}

func defaultPrescriptions() []models.Prescription {
	return []models.Prescription{
		{
			ID: "RX001", AppointmentID: "APT001", PatientID: "001234", PatientName: "Budi Santoso",
			DoctorID: "USR002", DoctorName: "dr. Budi Santoso", Date: "2024-01-15",
			Medicines: []models.PrescriptionMedicine{
				{MedicineID: "MED001", MedicineName: "Paracetamol 500mg", Quantity: 10, Dosage: "3x1 setelah makan"},
				{MedicineID: "MED003", MedicineName: "OBH Combi", Quantity: 1, Dosage: "3x1 sendok makan"},
			},
			Status: models.PrescriptionDispensed, Notes: "Minum obat sesuai dosis",
		},
	}
}

func defaultMedicalRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{
			ID: "MR001", PatientID: "001234", PatientName: "Budi Santoso", AppointmentID: "APT001",
			Date: "2024-01-15", Complaint: "Demam dan batuk",
			Examination: "TD: 120/80, Suhu: 38.5°C, Nadi: 88x/menit",
			Diagnosis:   "ISPA (Infeksi Saluran Pernapasan Atas)",
			Treatment:   "Istirahat, minum obat teratur",
			DoctorID:    "USR002", DoctorName: "dr. Budi Santoso",
			Status: "completed", CareStatus: models.CareOutpatient,
		},
	}
}

func defaultHospital() []models.Hospital {
	return []models.Hospital{
		{
			ID: "HSP001", Name: "PUSKESMAS MKP KELOMPOK 6",
			Address: "Jl. Kesehatan No. 1", Phone: "021-1234567",
			Email: "info@puskesmas.go.id", Head: "dr. Budi Santoso",
			OperationalHours: models.OperationalHours{
				Weekdays:  models.HoursRange{Start: "08:00", End: "16:00"},
				Saturday:  models.HoursRange{Start: "08:00", End: "12:00"},
				Sunday:    models.HoursRange{Start: "", End: ""},
				Emergency: "24 jam",
			},
		},
	}
}

func defaultPolis() []models.Poli {
	return []models.Poli{
		{ID: "POL001", Name: "Poli Umum", Doctor: "dr. Budi Santoso", Schedule: "Senin - Jumat", Time: "08:00 - 15:00", Status: "active"},
		{ID: "POL002", Name: "Poli Gigi", Doctor: "drg. Dewi Lestari", Schedule: "Senin - Kamis", Time: "08:00 - 14:00", Status: "active"},
		{ID: "POL003", Name: "Poli KIA", Doctor: "bidan Sari Dewi", Schedule: "Senin - Jumat", Time: "08:00 - 13:00", Status: "active"},
		{ID: "POL004", Name: "Poli Lansia", Doctor: "dr. Ahmad Sehat", Schedule: "Selasa - Jumat", Time: "09:00 - 13:00", Status: "active"},
	}
}

func defaultMedicineCategories() []models.MedicineCategory {
	return []models.MedicineCategory{
		{ID: "CAT001", Name: "Analgesik"},
		{ID: "CAT002", Name: "Antibiotik"},
		{ID: "CAT003", Name: "Batuk & Flu"},
		{ID: "CAT004", Name: "Pencernaan"},
	}
}

func defaultMedicalActions() []models.MedicalAction {
	return []models.MedicalAction{
		{Code: "T001", Name: "Pemeriksaan Umum", Fee: 25000},
		{Code: "T002", Name: "Perawatan Luka", Fee: 50000},
		{Code: "T003", Name: "Cabut Gigi", Fee: 75000},
		{Code: "T004", Name: "Suntik KB", Fee: 35000},
	}
}
