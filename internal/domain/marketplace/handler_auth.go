package marketplace

import (
	"encoding/json"
	"errors"
	"net/http"

	"petty-marketplace/internal/middleware"
)

type loginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.Login(r.Context(), Role(req.Role), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				// el mensaje visible vive en el estado, no acá
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": st.AuthError})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(st.Auth))
	}
}

type registerOwnerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

type registerOwnerResponse struct {
	Session sessionResponse `json:"session"`
	Owner   ownerResponse   `json:"owner"`
}

func registerOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.RegisterOwner(r.Context(), RegisterOwnerInput{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			City:     req.City,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		// la operación autentica como la cuenta nueva: Auth apunta a ella
		created := st.findOwner(st.Auth.UserID)
		if created == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, registerOwnerResponse{
			Session: toSessionResponse(st.Auth),
			Owner:   toOwnerResponse(*created),
		})
	}
}

type registerSitterRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	City     string  `json:"city"`
	Age      int     `json:"age"`
	Rating   float64 `json:"rating"`
	About    string  `json:"about"`
}

type registerSitterResponse struct {
	Session sessionResponse `json:"session"`
	Sitter  sitterResponse  `json:"sitter"`
}

func registerSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerSitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.RegisterSitter(r.Context(), RegisterSitterInput{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			City:     req.City,
			Age:      req.Age,
			Rating:   req.Rating,
			About:    req.About,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		created := st.findSitter(st.Auth.UserID)
		if created == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, registerSitterResponse{
			Session: toSessionResponse(st.Auth),
			Sitter:  toSitterResponse(*created),
		})
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Logout(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func sessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "no session", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{Role: sess.Role, UserID: sess.UserID})
	}
}
