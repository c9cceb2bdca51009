package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"petty-marketplace/internal/platform/logger"
	"petty-marketplace/internal/ports/statestore"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrBadState           = errors.New("invalid state")
	ErrDuplicate          = errors.New("duplicate")
)

// Service es el contenedor de estado: única fuente de verdad para
// cuentas, pedidos y sesión. Cada operación es atómica contra el
// snapshot vigente: valida, aplica todo o no toca nada, y persiste.
//
// El modelo lógico es de un solo escritor; el mutex existe porque los
// handlers HTTP sí son concurrentes.
type Service struct {
	mu    sync.RWMutex
	state State

	store statestore.Store
	log   logger.Logger
	now   func() time.Time
	newID func(prefix string) string
}

func NewService(store statestore.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewFromEnv()
	}

	s := &Service{
		store: store,
		log:   log,
		now:   time.Now,
		newID: newPrefixedID,
	}
	s.state = s.loadInitial()
	return s
}

// loadInitial lee el blob persistido y lo mezcla sobre la semilla.
// Blob ausente o corrupto degrada a la semilla completa, nunca a error fatal.
func (s *Service) loadInitial() State {
	seed := defaultState(s.now())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	raw, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, statestore.ErrNotFound) {
			s.log.Warn("state load failed, using seed", map[string]any{"error": err.Error()})
		}
		return seed
	}

	merged, err := mergeOverSeed(seed, raw)
	if err != nil {
		s.log.Error("stored state is corrupt, using seed", map[string]any{"error": err.Error()})
		return seed
	}

	// La sesión jamás sobrevive un reinicio, venga lo que venga en el blob.
	merged.Auth = Session{}
	return merged
}

// partialState detecta presencia de campos top-level: un campo presente
// en el blob pisa el de la semilla entero, uno ausente conserva la semilla.
type partialState struct {
	Auth      *Session  `json:"auth"`
	AuthError *string   `json:"authError"`
	Owners    *[]Owner  `json:"owners"`
	Sitters   *[]Sitter `json:"sitters"`
	Orders    *[]Order  `json:"orders"`
}

func mergeOverSeed(seed State, raw []byte) (State, error) {
	var p partialState
	if err := json.Unmarshal(raw, &p); err != nil {
		return State{}, err
	}

	out := seed
	if p.AuthError != nil {
		out.AuthError = *p.AuthError
	}
	if p.Owners != nil {
		out.Owners = *p.Owners
	}
	if p.Sitters != nil {
		out.Sitters = *p.Sitters
	}
	if p.Orders != nil {
		out.Orders = *p.Orders
	}
	return out, nil
}

// persist serializa el estado con la sesión vacía y lo guarda.
// Errores de escritura se loguean y se tragan: el estado en memoria
// sigue siendo válido. Se llama con el lock tomado.
func (s *Service) persist(ctx context.Context, op string) {
	blob := s.state
	blob.Auth = Session{}

	raw, err := json.Marshal(blob)
	if err != nil {
		s.log.Error("state marshal failed", map[string]any{"op": op, "error": err.Error()})
		return
	}

	if err := s.store.Save(ctx, raw); err != nil {
		s.log.Error("state save failed", map[string]any{"op": op, "error": err.Error()})
		return
	}

	s.log.Debug("state persisted", map[string]any{
		"op":    op,
		"op_id": uuid.NewString(),
		"bytes": len(raw),
	})
}

// Snapshot devuelve una copia profunda del árbol completo.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Service) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth
}

func (s *Service) OwnerByID(id string) (Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := s.state.findOwner(id)
	if o == nil {
		return Owner{}, ErrNotFound
	}
	cp := *o
	cp.Pets = copySlice(o.Pets)
	return cp, nil
}

func (s *Service) SitterByID(id string) (Sitter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.state.findSitter(id)
	if c == nil {
		return Sitter{}, ErrNotFound
	}
	return *c, nil
}

func (s *Service) Sitters() []Sitter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.state.Sitters)
}

func (s *Service) PetsByOwner(ownerID string) ([]Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := s.state.findOwner(ownerID)
	if o == nil {
		return nil, ErrNotFound
	}
	return copySlice(o.Pets), nil
}

// OrderFilter filtra el listado de pedidos. SitterID matchea pedidos
// donde el sitter está postulado o asignado.
type OrderFilter struct {
	Status   OrderStatus
	OwnerID  string
	SitterID string
}

func (s *Service) Orders(f OrderFilter) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0)
	for i := range s.state.Orders {
		ord := &s.state.Orders[i]

		if f.Status != "" && ord.Status != f.Status {
			continue
		}
		if f.OwnerID != "" && ord.OwnerID != f.OwnerID {
			continue
		}
		if f.SitterID != "" {
			assigned := ord.AssignedSitterID != nil && *ord.AssignedSitterID == f.SitterID
			if !assigned && !hasApplicant(ord, f.SitterID) {
				continue
			}
		}

		out = append(out, copyOrder(*ord))
	}
	return out
}

func (s *Service) OrderByID(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ord := s.state.findOrder(id)
	if ord == nil {
		return Order{}, ErrNotFound
	}
	return copyOrder(*ord), nil
}
