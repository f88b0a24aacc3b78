package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/handlers"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *storage.Store, cfg *config.Config, log zerolog.Logger) {
	// Workflow services
	appointmentSvc := services.NewAppointmentService(store, log)
	pharmacySvc := services.NewPharmacyService(store, log)
	examinationSvc := services.NewExaminationService(store, log)
	nursingSvc := services.NewNursingService(store, log)
	inpatientSvc := services.NewInpatientService(store, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(store, cfg)
	userHandler := handlers.NewUserHandler(store)
	patientHandler := handlers.NewPatientHandler(store)
	medicineHandler := handlers.NewMedicineHandler(store, pharmacySvc)
	appointmentHandler := handlers.NewAppointmentHandler(store, appointmentSvc)
	prescriptionHandler := handlers.NewPrescriptionHandler(store, pharmacySvc)
	recordHandler := handlers.NewMedicalRecordHandler(store, examinationSvc)
	nursingHandler := handlers.NewNursingHandler(store, nursingSvc)
	inpatientHandler := handlers.NewInpatientHandler(store, inpatientSvc)
	referralHandler := handlers.NewReferralHandler(store)
	hospitalHandler := handlers.NewHospitalHandler(store)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutes := private.Group("/auth")
		{
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/profile", authHandler.GetProfile)
		}

		// Staff account management (admin only)
		userRoutes := private.Group("/users")
		{
			// Doctor lookup is open to all staff (appointment booking).
			userRoutes.GET("", userHandler.GetUsers)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Patient registry (admin registers, nurses update, all staff read)
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleNurse), patientHandler.CreatePatient)
			patientRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleNurse), patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.DeletePatient)
		}

		// Pharmacy inventory (admin and pharmacist manage, all staff read)
		medicineRoutes := private.Group("/medicines")
		{
			medicineRoutes.GET("", medicineHandler.GetMedicines)
			medicineRoutes.GET("/low-stock", medicineHandler.GetLowStock)
			medicineRoutes.GET("/:id", medicineHandler.GetMedicineByID)

			manage := medicineRoutes.Group("")
			manage.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RolePharmacist))
			{
				manage.POST("", medicineHandler.CreateMedicine)
				manage.PUT("/:id", medicineHandler.UpdateMedicine)
				manage.DELETE("/:id", medicineHandler.DeleteMedicine)
			}
		}

		// Appointment lifecycle
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleNurse), appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/start", middleware.RoleAuthMiddleware(models.RoleDoctor), appointmentHandler.StartAppointment)
			appointmentRoutes.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentRoutes.POST("/:id/examination", middleware.RoleAuthMiddleware(models.RoleDoctor), recordHandler.CompleteExamination)
		}

		// Prescriptions (doctors issue, pharmacists dispense)
		prescriptionRoutes := private.Group("/prescriptions")
		{
			prescriptionRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), prescriptionHandler.CreatePrescription)
			prescriptionRoutes.GET("", prescriptionHandler.GetPrescriptions)
			prescriptionRoutes.GET("/:id", prescriptionHandler.GetPrescriptionByID)
			prescriptionRoutes.PATCH("/:id/dispense", middleware.RoleAuthMiddleware(models.RolePharmacist), prescriptionHandler.DispensePrescription)
		}

		// Clinical documentation
		recordRoutes := private.Group("/medical-records")
		{
			recordRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), recordHandler.GetMedicalRecords)
			recordRoutes.GET("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), recordHandler.GetMedicalRecordByID)
		}
		noteRoutes := private.Group("/medical-notes")
		{
			noteRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), recordHandler.CreateMedicalNote)
			noteRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), recordHandler.GetMedicalNotes)
		}

		// Nursing station
		vitalRoutes := private.Group("/vital-signs")
		{
			vitalRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleNurse), nursingHandler.CreateVitalSign)
			vitalRoutes.GET("", nursingHandler.GetVitalSigns)
		}
		actionRoutes := private.Group("/nursing-actions")
		{
			actionRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleNurse), nursingHandler.CreateNursingAction)
			actionRoutes.GET("", nursingHandler.GetNursingActions)
			actionRoutes.PATCH("/:id/complete", middleware.RoleAuthMiddleware(models.RoleNurse), nursingHandler.CompleteNursingAction)
		}

		// Ward
		inpatientRoutes := private.Group("/inpatients")
		{
			inpatientRoutes.GET("", inpatientHandler.GetInpatients)
			inpatientRoutes.GET("/:id", inpatientHandler.GetInpatientByID)
			inpatientRoutes.PATCH("/:id/discharge", middleware.RoleAuthMiddleware(models.RoleDoctor), inpatientHandler.DischargeInpatient)
		}

		// Referrals
		referralRoutes := private.Group("/referrals")
		{
			referralRoutes.GET("", referralHandler.GetReferrals)
			referralRoutes.GET("/:id", referralHandler.GetReferralByID)
			referralRoutes.PATCH("/:id/status", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), referralHandler.UpdateReferralStatus)
		}

		// Clinic administration
		adminRoutes := private.Group("")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/hospital", hospitalHandler.GetHospital)
			adminRoutes.PUT("/hospital", hospitalHandler.UpdateHospital)

			adminRoutes.POST("/polis", hospitalHandler.CreatePoli)
			adminRoutes.PUT("/polis/:id", hospitalHandler.UpdatePoli)
			adminRoutes.DELETE("/polis/:id", hospitalHandler.DeletePoli)

			adminRoutes.POST("/medicine-categories", hospitalHandler.CreateMedicineCategory)
			adminRoutes.DELETE("/medicine-categories/:id", hospitalHandler.DeleteMedicineCategory)

			adminRoutes.POST("/medical-actions", hospitalHandler.CreateMedicalAction)
			adminRoutes.DELETE("/medical-actions/:code", hospitalHandler.DeleteMedicalAction)
		}

		// Reference lists readable by all staff
		private.GET("/polis", hospitalHandler.GetPolis)
		private.GET("/medicine-categories", hospitalHandler.GetMedicineCategories)
		private.GET("/medical-actions", hospitalHandler.GetMedicalActions)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
