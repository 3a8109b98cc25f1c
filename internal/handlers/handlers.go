package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/skyreserve/booking-system/internal/search"
	"github.com/skyreserve/booking-system/internal/service"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/internal/websocket"
	"github.com/skyreserve/booking-system/pkg/models"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
	hub            *websocket.Hub
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService, hub *websocket.Hub) *Handler {
	return &Handler{
		bookingService: bookingService,
		hub:            hub,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// --- Flights ---

// SearchFlights handles POST /api/flights/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	offers := h.bookingService.SearchFlights(r.Context(), req)
	respondJSON(w, http.StatusOK, offers)
}

// GetFlights handles GET /api/flights with optional filter query params
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := search.Criteria{
		Class:       q.Get("class"),
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Date:        q.Get("date"),
	}

	offers := h.bookingService.ListFlights(r.Context(), criteria)
	respondJSON(w, http.StatusOK, offers)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	offer, err := h.bookingService.GetFlight(r.Context(), flightID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// GetFlightSeats handles GET /api/flights/{id}/seats
func (h *Handler) GetFlightSeats(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	seats, err := h.bookingService.GetFlightSeats(r.Context(), flightID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// --- Checkout sessions ---

// StartCheckout handles POST /api/checkout
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var req models.StartCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}

	state, err := h.bookingService.StartCheckout(r.Context(), req.FlightID)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

// GetCheckout handles GET /api/checkout/{id}
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := h.bookingService.GetCheckoutState(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Checkout session not found")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// SetPassenger handles POST /api/checkout/{id}/passenger
func (h *Handler) SetPassenger(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var passenger models.Passenger
	if err := json.NewDecoder(r.Body).Decode(&passenger); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.bookingService.SetPassenger(r.Context(), sessionID, passenger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondWithState(w, r, sessionID)
}

// SetExtras handles POST /api/checkout/{id}/extras
func (h *Handler) SetExtras(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var extras models.Extras
	if err := json.NewDecoder(r.Body).Decode(&extras); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.bookingService.SetExtras(r.Context(), sessionID, extras); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondWithState(w, r, sessionID)
}

// SelectSeat handles POST /api/checkout/{id}/seat
func (h *Handler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req models.SelectSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Seat == "" {
		respondError(w, http.StatusBadRequest, "Seat is required")
		return
	}

	if err := h.bookingService.SelectSeat(r.Context(), sessionID, req.Seat); err != nil {
		if errors.Is(err, service.ErrSeatUnavailable) {
			respondError(w, http.StatusConflict, "Seat is not available")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondWithState(w, r, sessionID)
}

// Advance handles POST /api/checkout/{id}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.bookingService.Advance(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The commit at the final step runs the simulated payment before the
	// state settles, so give the workflow a moment to process.
	time.Sleep(100 * time.Millisecond)
	h.respondWithState(w, r, sessionID)
}

// Back handles POST /api/checkout/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.bookingService.Back(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondWithState(w, r, sessionID)
}

// CancelCheckout handles DELETE /api/checkout/{id}
func (h *Handler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.bookingService.CancelCheckout(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Checkout cancelled"})
}

// CheckoutWS handles GET /api/checkout/{id}/ws
func (h *Handler) CheckoutWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	h.hub.Serve(w, r, sessionID)
}

// respondWithState returns the refreshed wizard state and pushes it to any
// session watchers.
func (h *Handler) respondWithState(w http.ResponseWriter, r *http.Request, sessionID string) {
	state, err := h.bookingService.GetCheckoutState(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Checkout session not found")
		return
	}
	h.hub.BroadcastState(state)
	respondJSON(w, http.StatusOK, state)
}

// --- Booking history ---

// GetBookings handles GET /api/bookings
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListBookings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	respondJSON(w, http.StatusOK, bookings)
}

// CancelBooking handles DELETE /api/bookings/{bookingId}
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.bookingService.CancelBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

// --- Auth ---

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.bookingService.Login(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingService.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentUser handles GET /api/auth/me
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.bookingService.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, "Not signed in")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// --- Promotions ---

// GetPromotions handles GET /api/promotions
func (h *Handler) GetPromotions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.Promotions(r.Context()))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
