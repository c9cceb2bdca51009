package marketplace

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/register/owner", registerOwnerHandler(svc))
		ar.Post("/register/sitter", registerSitterHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
		ar.Get("/session", sessionHandler(svc))
	})

	r.Route("/owners/{ownerID}/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", addPetHandler(svc))
	})

	r.Get("/sitters", listSittersHandler(svc))

	r.Route("/orders", func(or chi.Router) {
		or.Get("/", listOrdersHandler(svc))
		or.Post("/", createOrderHandler(svc))
		or.Get("/{orderID}", getOrderHandler(svc))
		or.Post("/{orderID}/applications", applyHandler(svc))
		or.Post("/{orderID}/assignment", assignHandler(svc))
		or.Get("/{orderID}/chat", listMessagesHandler(svc))
		or.Post("/{orderID}/chat", sendMessageHandler(svc))
	})
}

// Las cuentas nunca salen al wire con password; el resto de los campos
// viaja tal cual el modelo.
type sessionResponse struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Pets     []Pet  `json:"pets"`
}

type sitterResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	City     string  `json:"city"`
	Age      int     `json:"age"`
	Rating   float64 `json:"rating"`
	About    string  `json:"about"`
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{Role: string(s.Role), UserID: s.UserID}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:       o.ID,
		FullName: o.FullName,
		Email:    o.Email,
		Phone:    o.Phone,
		City:     o.City,
		Pets:     o.Pets,
	}
}

func toSitterResponse(c Sitter) sitterResponse {
	return sitterResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		City:     c.City,
		Age:      c.Age,
		Rating:   c.Rating,
		About:    c.About,
	}
}

// statusFor mapea sentinels del contenedor a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadState), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
