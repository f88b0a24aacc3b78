package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store        *storage.Store
	Appointments *services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *storage.Store, appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Store: store, Appointments: appointments}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"`
	Poli      string `json:"poli" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Complaint string `json:"complaint"`
}

// CreateAppointment schedules a new appointment with a queue number.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Appointments.Schedule(services.ScheduleInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Poli:      req.Poli,
		Date:      req.Date,
		Time:      req.Time,
		Complaint: req.Complaint,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments returns appointments, optionally filtered by date, poli,
// status or doctorId query parameters.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := storage.GetAll[models.Appointment](h.Store, storage.KeyAppointments)
	if err != nil {
		respondError(c, err)
		return
	}

	date := c.Query("date")
	poli := c.Query("poli")
	status := c.Query("status")
	doctorID := c.Query("doctorId")

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if date != "" && a.Date != date {
			continue
		}
		if poli != "" && a.Poli != poli {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		filtered = append(filtered, a)
	}
	utils.Success(c, "Appointments fetched successfully", filtered)
}

// GetAppointmentByID returns a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := storage.GetByID[models.Appointment](h.Store, storage.KeyAppointments, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// StartAppointment begins the examination of a waiting appointment.
func (h *AppointmentHandler) StartAppointment(c *gin.Context) {
	appointment, err := h.Appointments.Start(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Appointment started", appointment)
}

// CancelAppointment cancels an appointment that is not yet terminal. The
// queue number is kept; later bookings are not renumbered.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appointment, err := h.Appointments.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Appointment cancelled", appointment)
}
