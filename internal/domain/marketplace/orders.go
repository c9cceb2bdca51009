package marketplace

import (
	"context"
	"strings"
)

type CreateOrderInput struct {
	OwnerID string
	PetID   string
	Date    string
	Address string
	Comment string
}

// CreateOrder crea un pedido open, sin postulantes ni sitter ni chat,
// y lo antepone a la colección (más nuevo primero). La mascota debe
// pertenecer al owner del pedido.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := s.state.findOwner(in.OwnerID)
	if owner == nil {
		return s.state.clone(), ErrNotFound
	}

	ownsPet := false
	for _, p := range owner.Pets {
		if p.ID == in.PetID {
			ownsPet = true
			break
		}
	}
	if !ownsPet {
		return s.state.clone(), ErrInvalidInput
	}

	ord := Order{
		ID:               s.newID("order"),
		OwnerID:          in.OwnerID,
		PetID:            in.PetID,
		Date:             strings.TrimSpace(in.Date),
		Address:          strings.TrimSpace(in.Address),
		Comment:          strings.TrimSpace(in.Comment),
		Status:           StatusOpen,
		Applicants:       []string{},
		AssignedSitterID: nil,
		Chat:             []ChatMessage{},
	}

	s.state.Orders = append([]Order{ord}, s.state.Orders...)
	s.persist(ctx, "createOrder")
	return s.state.clone(), nil
}

// ApplyToOrder suma al sitter como postulante. Solo sobre pedidos open
// y solo una vez por sitter; el orden de postulación se conserva.
func (s *Service) ApplyToOrder(ctx context.Context, orderID, sitterID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ord := s.state.findOrder(orderID)
	if ord == nil {
		return s.state.clone(), ErrNotFound
	}
	if s.state.findSitter(sitterID) == nil {
		return s.state.clone(), ErrNotFound
	}
	if ord.Status != StatusOpen {
		return s.state.clone(), ErrBadState
	}
	if hasApplicant(ord, sitterID) {
		return s.state.clone(), ErrDuplicate
	}

	ord.Applicants = append(ord.Applicants, sitterID)
	s.persist(ctx, "applyToOrder")
	return s.state.clone(), nil
}

// AssignSitter fija el sitter asignado y pasa el pedido a assigned.
// Se puede llamar con cualquier status (re-asignación permitida) y es
// idempotente. Garantiza que el asignado figure entre los postulantes.
func (s *Service) AssignSitter(ctx context.Context, orderID, sitterID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ord := s.state.findOrder(orderID)
	if ord == nil {
		return s.state.clone(), ErrNotFound
	}
	if s.state.findSitter(sitterID) == nil {
		return s.state.clone(), ErrNotFound
	}

	sid := sitterID
	ord.AssignedSitterID = &sid
	ord.Status = StatusAssigned
	if !hasApplicant(ord, sitterID) {
		ord.Applicants = append(ord.Applicants, sitterID)
	}

	s.persist(ctx, "assignSitter")
	return s.state.clone(), nil
}
