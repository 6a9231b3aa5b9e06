package http

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/http/handler"
	"diagnostic-center-api/internal/delivery/http/middleware"
	"diagnostic-center-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	catalogHandler     *handler.CatalogHandler
	appointmentHandler *handler.AppointmentHandler
	paymentHandler     *handler.PaymentHandler
	bannerHandler      *handler.BannerHandler
	authMiddleware     *middleware.AuthMiddleware
	roleMiddleware     *middleware.RoleMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	appointmentHandler *handler.AppointmentHandler,
	paymentHandler *handler.PaymentHandler,
	bannerHandler *handler.BannerHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		catalogHandler:     catalogHandler,
		appointmentHandler: appointmentHandler,
		paymentHandler:     paymentHandler,
		bannerHandler:      bannerHandler,
		authMiddleware:     authMiddleware,
		roleMiddleware:     roleMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers every route. CORS and request logging wrap the whole
// router so preflight and unmatched requests get them too.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Public routes
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/jwt", r.authHandler.IssueToken).Methods(http.MethodPost)
	r.router.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	r.router.HandleFunc("/tests", r.catalogHandler.ListTests).Methods(http.MethodGet)
	r.router.HandleFunc("/tests/{slug}/{date}", r.catalogHandler.GetTest).Methods(http.MethodGet)
	r.router.HandleFunc("/banners", r.bannerHandler.GetAllBanners).Methods(http.MethodGet)
	r.router.HandleFunc("/banners/active", r.bannerHandler.GetActiveBanner).Methods(http.MethodGet)

	// Authenticated routes acting on the caller's own data
	owner := middleware.RequireOwner("email")
	authed := r.router.NewRoute().Subrouter()
	authed.Use(r.authMiddleware.Authenticate)
	authed.Handle("/is_admin/{email}", owner(http.HandlerFunc(r.authHandler.IsAdmin))).Methods(http.MethodGet)
	authed.Handle("/users/{email}", owner(http.HandlerFunc(r.userHandler.GetUser))).Methods(http.MethodGet)
	authed.Handle("/users/{email}", owner(http.HandlerFunc(r.userHandler.UpdateUser))).Methods(http.MethodPatch)
	authed.Handle("/appointments/{email}", owner(http.HandlerFunc(r.appointmentHandler.GetUpcomingAppointments))).Methods(http.MethodGet)
	authed.Handle("/payments/{email}", owner(http.HandlerFunc(r.paymentHandler.GetPaymentHistory))).Methods(http.MethodGet)
	authed.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	authed.HandleFunc("/create-payment-intent", r.paymentHandler.CreatePaymentIntent).Methods(http.MethodPost)
	authed.HandleFunc("/payments", r.paymentHandler.ConfirmPayment).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := r.router.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.roleMiddleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/admin/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/admin/users/{email}", r.userHandler.AdminUpdateUser).Methods(http.MethodPatch)

	// Catalog management (admin)
	admin.HandleFunc("/tests", r.catalogHandler.CreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/admin/tests/{slug}", r.catalogHandler.UpsertTest).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/tests/{slug}", r.catalogHandler.DeleteTest).Methods(http.MethodDelete)

	// Appointment management (admin)
	admin.HandleFunc("/admin/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/admin/appointments/{id}", r.appointmentHandler.AdminUpdateAppointment).Methods(http.MethodPatch)

	// Banner management (admin)
	admin.HandleFunc("/banners", r.bannerHandler.CreateBanner).Methods(http.MethodPost)
	admin.HandleFunc("/banners/{id}", r.bannerHandler.ActivateBanner).Methods(http.MethodPatch)
	admin.HandleFunc("/banners/{id}", r.bannerHandler.DeleteBanner).Methods(http.MethodDelete)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", nil)
}
