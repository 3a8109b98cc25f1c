package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyreserve/booking-system/internal/handlers"
)

// NewRouter creates and configures the HTTP router
func NewRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights/search", h.SearchFlights).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seats", h.GetFlightSeats).Methods(http.MethodGet, http.MethodOptions)

	// Checkout sessions
	api.HandleFunc("/checkout", h.StartCheckout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/checkout/{id}", h.GetCheckout).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/checkout/{id}", h.CancelCheckout).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/checkout/{id}/passenger", h.SetPassenger).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/checkout/{id}/extras", h.SetExtras).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/checkout/{id}/seat", h.SelectSeat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/checkout/{id}/advance", h.Advance).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/checkout/{id}/back", h.Back).Methods(http.MethodPost, http.MethodOptions)

	// WebSocket for real-time checkout updates
	api.HandleFunc("/checkout/{id}/ws", h.CheckoutWS)

	// Booking history
	api.HandleFunc("/bookings", h.GetBookings).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{bookingId}", h.CancelBooking).Methods(http.MethodDelete, http.MethodOptions)

	// Auth
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/me", h.CurrentUser).Methods(http.MethodGet, http.MethodOptions)

	// Promotions
	api.HandleFunc("/promotions", h.GetPromotions).Methods(http.MethodGet, http.MethodOptions)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
