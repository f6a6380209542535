package http

import (
	"net/http"

	"clinicore/internal/delivery/http/handler"
	"clinicore/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	appointmentHandler *handler.AppointmentHandler
	testHandler        *handler.MedicalTestHandler
	billingHandler     *handler.BillingHandler
	logHandler         *handler.WorkflowLogHandler
	imageHandler       *handler.ImageHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	testHandler *handler.MedicalTestHandler,
	billingHandler *handler.BillingHandler,
	logHandler *handler.WorkflowLogHandler,
	imageHandler *handler.ImageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		appointmentHandler: appointmentHandler,
		testHandler:        testHandler,
		billingHandler:     billingHandler,
		logHandler:         logHandler,
		imageHandler:       imageHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// User management (admin)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.GetUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}/activate", r.authHandler.Activate).Methods(http.MethodPut)
	users.HandleFunc("/{id}/deactivate", r.authHandler.Deactivate).Methods(http.MethodPut)

	// Patient records (staff; patients addressed by patient id)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.userHandler.GetPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.userHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.userHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/images", r.imageHandler.GetPatientImages).Methods(http.MethodGet)

	// Staff directory
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("", r.userHandler.GetStaffMembers).Methods(http.MethodGet)
	staff.HandleFunc("/{id}", r.userHandler.GetStaffMember).Methods(http.MethodGet)
	staff.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.userHandler.UpdateStaffMember))).Methods(http.MethodPut)

	// Appointments (clerks schedule, any staff reads)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequireClerk(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.Handle("/{id}/status", middleware.RequireStaff(http.HandlerFunc(r.appointmentHandler.UpdateStatus))).Methods(http.MethodPut)

	// Medical tests (doctors order, radiologists execute)
	tests := api.PathPrefix("/tests").Subrouter()
	tests.Use(r.authMiddleware.Authenticate)
	tests.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.testHandler.CreateTest))).Methods(http.MethodPost)
	tests.HandleFunc("", r.testHandler.GetTests).Methods(http.MethodGet)
	tests.HandleFunc("/{id}", r.testHandler.GetTest).Methods(http.MethodGet)
	tests.Handle("/{id}/radiologist", middleware.RequireStaff(http.HandlerFunc(r.testHandler.AssignRadiologist))).Methods(http.MethodPut)
	tests.Handle("/{id}/image", middleware.RequireRadiologist(http.HandlerFunc(r.testHandler.AttachImage))).Methods(http.MethodPut)
	tests.Handle("/{id}/complete", middleware.RequireRadiologist(http.HandlerFunc(r.testHandler.CompleteTest))).Methods(http.MethodPut)
	tests.Handle("/{id}/report", middleware.RequireClinician(http.HandlerFunc(r.testHandler.GenerateReport))).Methods(http.MethodPost)

	// Diagnosis reports
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.HandleFunc("", r.testHandler.GetReports).Methods(http.MethodGet)
	reports.HandleFunc("/{id}", r.testHandler.GetReport).Methods(http.MethodGet)
	reports.Handle("/{id}/finalize", middleware.RequireClinician(http.HandlerFunc(r.testHandler.FinalizeReport))).Methods(http.MethodPut)

	// Medical images (staff only)
	images := api.PathPrefix("/images").Subrouter()
	images.Use(r.authMiddleware.Authenticate)
	images.Use(middleware.RequireStaff)
	images.HandleFunc("", r.imageHandler.Upload).Methods(http.MethodPost)
	images.HandleFunc("", r.imageHandler.GetImages).Methods(http.MethodGet)
	images.HandleFunc("/{id}", r.imageHandler.GetImage).Methods(http.MethodGet)
	images.HandleFunc("/{id}/url", r.imageHandler.GetImageURL).Methods(http.MethodGet)
	images.HandleFunc("/{id}", r.imageHandler.DeleteImage).Methods(http.MethodDelete)

	// Billing (clerks)
	billing := api.PathPrefix("/billing").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.Handle("", middleware.RequireClerk(http.HandlerFunc(r.billingHandler.CreateBilling))).Methods(http.MethodPost)
	billing.HandleFunc("", r.billingHandler.GetBillings).Methods(http.MethodGet)
	billing.HandleFunc("/statistics/summary", r.billingHandler.GetSummary).Methods(http.MethodGet)
	billing.HandleFunc("/statistics/monthly-revenue", r.billingHandler.GetMonthlyRevenue).Methods(http.MethodGet)
	billing.HandleFunc("/patient/{id}/total", r.billingHandler.GetPatientTotal).Methods(http.MethodGet)
	billing.HandleFunc("/{id}", r.billingHandler.GetBilling).Methods(http.MethodGet)
	billing.Handle("/{id}", middleware.RequireClerk(http.HandlerFunc(r.billingHandler.UpdateBilling))).Methods(http.MethodPut)
	billing.Handle("/{id}", middleware.RequireClerk(http.HandlerFunc(r.billingHandler.DeleteBilling))).Methods(http.MethodDelete)
	billing.Handle("/{id}/status", middleware.RequireClerk(http.HandlerFunc(r.billingHandler.UpdateStatus))).Methods(http.MethodPut)

	// Workflow audit log (staff record, admin read)
	logs := api.PathPrefix("/logs").Subrouter()
	logs.Use(r.authMiddleware.Authenticate)
	logs.Handle("", middleware.RequireStaff(http.HandlerFunc(r.logHandler.CreateLog))).Methods(http.MethodPost)
	logs.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.logHandler.GetLogs))).Methods(http.MethodGet)
	logs.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.logHandler.GetLog))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
