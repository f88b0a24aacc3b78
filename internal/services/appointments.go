package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// AppointmentService owns the appointment lifecycle: queue numbering at
// creation and the waiting → in-progress → completed / cancelled machine.
type AppointmentService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(store *storage.Store, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{store: store, log: log}
}

// ScheduleInput carries the fields of a new appointment request.
type ScheduleInput struct {
	PatientID string
	DoctorID  string
	Poli      string
	Date      string
	Time      string
	Complaint string
}

// Schedule registers a new appointment. The queue number is one past the
// number of appointments already booked for the same date and poli; cancelled
// appointments keep their number, so numbers are not necessarily dense.
func (s *AppointmentService) Schedule(in ScheduleInput) (models.Appointment, error) {
	patient, err := storage.GetByID[models.Patient](s.store, storage.KeyPatients, in.PatientID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("patient: %w", err)
	}
	doctor, err := storage.GetByID[models.User](s.store, storage.KeyUsers, in.DoctorID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("doctor: %w", err)
	}
	if doctor.Role != models.RoleDoctor {
		return models.Appointment{}, fmt.Errorf("%s is not a doctor: %w", in.DoctorID, ErrValidation)
	}

	all, err := storage.GetAll[models.Appointment](s.store, storage.KeyAppointments)
	if err != nil {
		return models.Appointment{}, err
	}
	queueNumber := 1
	for _, a := range all {
		if a.Date == in.Date && a.Poli == in.Poli {
			queueNumber++
		}
	}

	appointment := models.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Poli:        in.Poli,
		Date:        in.Date,
		Time:        in.Time,
		Complaint:   in.Complaint,
		Status:      models.AppointmentWaiting,
		QueueNumber: queueNumber,
	}
	created, err := storage.Create(s.store, storage.KeyAppointments, appointment)
	countOutcome("appointment_schedule", err)
	if err != nil {
		return models.Appointment{}, err
	}
	s.log.Info().Str("appointment", created.ID).Str("poli", in.Poli).
		Int("queue", queueNumber).Msg("appointment scheduled")
	return created, nil
}

// Start moves a waiting appointment into examination.
func (s *AppointmentService) Start(id string) (models.Appointment, error) {
	return s.transition(id, models.AppointmentInProgress, models.AppointmentWaiting)
}

// Cancel cancels an appointment that has not reached a terminal state.
func (s *AppointmentService) Cancel(id string) (models.Appointment, error) {
	return s.transition(id, models.AppointmentCancelled,
		models.AppointmentWaiting, models.AppointmentInProgress)
}

func (s *AppointmentService) transition(id string, to models.AppointmentStatus, from ...models.AppointmentStatus) (models.Appointment, error) {
	appointment, err := storage.GetByID[models.Appointment](s.store, storage.KeyAppointments, id)
	if err != nil {
		return models.Appointment{}, err
	}
	allowed := false
	for _, f := range from {
		if appointment.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Appointment{}, fmt.Errorf("%s -> %s: %w", appointment.Status, to, ErrInvalidTransition)
	}
	updated, err := storage.Update[models.Appointment](s.store, storage.KeyAppointments, id,
		map[string]any{"status": to})
	countOutcome("appointment_transition", err)
	if err != nil {
		return models.Appointment{}, err
	}
	s.log.Info().Str("appointment", id).Str("status", string(to)).Msg("appointment status changed")
	return updated, nil
}

// today returns the clinic's date stamp format.
func today() string { return time.Now().Format("2006-01-02") }

// clock returns the clinic's time-of-day stamp format.
func clock() string { return time.Now().Format("15:04") }
