package marketplace

import (
	"context"
	"strings"
)

type PetInput struct {
	Family string
	Gender string
	Age    int
	Name   string
	Breed  string
}

// AddPet agrega una mascota a la colección del owner. El ownerId de la
// mascota queda fijado por la colección que la contiene y no cambia nunca.
func (s *Service) AddPet(ctx context.Context, ownerID string, in PetInput) (State, error) {
	if strings.TrimSpace(in.Name) == "" {
		return s.Snapshot(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner := s.state.findOwner(ownerID)
	if owner == nil {
		return s.state.clone(), ErrNotFound
	}

	age := in.Age
	if age < 0 {
		age = 0
	}

	owner.Pets = append(owner.Pets, Pet{
		ID:     s.newID("pet"),
		Family: strings.TrimSpace(in.Family),
		Gender: strings.TrimSpace(in.Gender),
		Age:    age,
		Name:   strings.TrimSpace(in.Name),
		Breed:  strings.TrimSpace(in.Breed),
	})

	s.persist(ctx, "addPet")
	return s.state.clone(), nil
}
