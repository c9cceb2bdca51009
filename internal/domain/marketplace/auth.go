package marketplace

import (
	"context"
	"strings"
)

// Login busca la primera cuenta del pool del rol con email (trimmed) y
// password iguales. Match: sesión seteada y authError limpio. Mismatch:
// sesión vacía, authError con el mensaje fijo y ErrInvalidCredentials.
// Ambas ramas persisten (authError forma parte del blob).
func (s *Service) Login(ctx context.Context, role Role, email, password string) (State, error) {
	if role != RoleOwner && role != RoleSitter {
		return s.Snapshot(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)

	var userID string
	switch role {
	case RoleOwner:
		for _, o := range s.state.Owners {
			if o.Email == email && o.Password == password {
				userID = o.ID
				break
			}
		}
	case RoleSitter:
		for _, c := range s.state.Sitters {
			if c.Email == email && c.Password == password {
				userID = c.ID
				break
			}
		}
	}

	if userID == "" {
		s.state.Auth = Session{}
		s.state.AuthError = authErrorMessage
		s.persist(ctx, "login")
		return s.state.clone(), ErrInvalidCredentials
	}

	s.state.Auth = Session{Role: role, UserID: userID}
	s.state.AuthError = ""
	s.persist(ctx, "login")
	return s.state.clone(), nil
}

type RegisterOwnerInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	City     string
}

// RegisterOwner crea la cuenta y autentica de inmediato como ella.
// No hay chequeo de email duplicado (decisión heredada, ver DESIGN.md).
func (s *Service) RegisterOwner(ctx context.Context, in RegisterOwnerInput) (State, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return s.Snapshot(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := Owner{
		ID:       s.newID("owner"),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Phone:    strings.TrimSpace(in.Phone),
		City:     strings.TrimSpace(in.City),
		Pets:     []Pet{},
	}

	s.state.Owners = append(s.state.Owners, o)
	s.state.Auth = Session{Role: RoleOwner, UserID: o.ID}
	s.state.AuthError = ""
	s.persist(ctx, "registerOwner")
	return s.state.clone(), nil
}

type RegisterSitterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	City     string
	Age      int
	Rating   float64
	About    string
}

// RegisterSitter aplica defaults: rating 4 si no viene, edad 20 si no es
// positiva. Rating fuera de 0..5 se rechaza.
func (s *Service) RegisterSitter(ctx context.Context, in RegisterSitterInput) (State, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return s.Snapshot(), ErrInvalidInput
	}
	if in.Rating < 0 || in.Rating > 5 {
		return s.Snapshot(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rating := in.Rating
	if rating == 0 {
		rating = 4
	}
	age := in.Age
	if age <= 0 {
		age = 20
	}

	c := Sitter{
		ID:       s.newID("sitter"),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Phone:    strings.TrimSpace(in.Phone),
		City:     strings.TrimSpace(in.City),
		Age:      age,
		Rating:   rating,
		About:    strings.TrimSpace(in.About),
	}

	s.state.Sitters = append(s.state.Sitters, c)
	s.state.Auth = Session{Role: RoleSitter, UserID: c.ID}
	s.state.AuthError = ""
	s.persist(ctx, "registerSitter")
	return s.state.clone(), nil
}

// Logout limpia solo la sesión; cuentas y pedidos quedan intactos.
func (s *Service) Logout(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Auth = Session{}
	s.persist(ctx, "logout")
	return s.state.clone(), nil
}
