package marketplace

import (
	"encoding/json"
	"net/http"
	"strings"

	"petty-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type addPetRequest struct {
	Family string `json:"family"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.PetsByOwner(chi.URLParam(r, "ownerID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pets)
	}
}

func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "ownerID")

		var req addPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.AddPet(r.Context(), ownerID, PetInput{
			Family: req.Family,
			Gender: req.Gender,
			Age:    req.Age,
			Name:   req.Name,
			Breed:  req.Breed,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		owner := st.findOwner(ownerID)
		if owner == nil || len(owner.Pets) == 0 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, owner.Pets[len(owner.Pets)-1])
	}
}

func listSittersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sitters := svc.Sitters()

		out := make([]sitterResponse, 0, len(sitters))
		for _, c := range sitters {
			out = append(out, toSitterResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders := svc.Orders(OrderFilter{
			Status:   OrderStatus(strings.TrimSpace(q.Get("status"))),
			OwnerID:  strings.TrimSpace(q.Get("ownerId")),
			SitterID: strings.TrimSpace(q.Get("sitterId")),
		})
		writeJSON(w, http.StatusOK, orders)
	}
}

type createOrderRequest struct {
	OwnerID string `json:"ownerId"`
	PetID   string `json:"petId"`
	Date    string `json:"date"`
	Address string `json:"address"`
	Comment string `json:"comment"`
}

func createOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.CreateOrder(r.Context(), CreateOrderInput{
			OwnerID: req.OwnerID,
			PetID:   req.PetID,
			Date:    req.Date,
			Address: req.Address,
			Comment: req.Comment,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		// los pedidos nuevos van al frente de la colección
		if len(st.Orders) == 0 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, st.Orders[0])
	}
}

func getOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ord, err := svc.OrderByID(chi.URLParam(r, "orderID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ord)
	}
}

type applicationRequest struct {
	SitterID string `json:"sitterId"`
}

func applyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var req applicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.ApplyToOrder(r.Context(), orderID, req.SitterID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, *st.findOrder(orderID))
	}
}

func assignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var req applicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.AssignSitter(r.Context(), orderID, req.SitterID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, *st.findOrder(orderID))
	}
}

func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ord, err := svc.OrderByID(chi.URLParam(r, "orderID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ord.Chat)
	}
}

type sendMessageRequest struct {
	SenderRole string `json:"senderRole"`
	SenderID   string `json:"senderId"`
	Text       string `json:"text"`
}

func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// emisor por defecto: la sesión vigente
		if strings.TrimSpace(req.SenderID) == "" {
			if sess, ok := middleware.GetSession(r.Context()); ok {
				req.SenderRole = sess.Role
				req.SenderID = sess.UserID
			}
		}

		st, err := svc.SendMessage(r.Context(), orderID, Role(req.SenderRole), req.SenderID, req.Text)
		if err != nil {
			writeError(w, err)
			return
		}

		ord := st.findOrder(orderID)
		if ord == nil || len(ord.Chat) == 0 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, ord.Chat[len(ord.Chat)-1])
	}
}
