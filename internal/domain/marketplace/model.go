package marketplace

// Role identifica el tipo de cuenta autenticada.
// @Enum owner, sitter
type Role string

const (
	RoleOwner  Role = "owner"
	RoleSitter Role = "sitter"
)

// OrderStatus es el ciclo de vida del pedido: open -> assigned -> completed.
// No hay transición automática a completed ni cancelación.
type OrderStatus string

const (
	StatusOpen      OrderStatus = "open"
	StatusAssigned  OrderStatus = "assigned"
	StatusCompleted OrderStatus = "completed"
)

// Session es la sesión vigente. Transitoria: se vacía antes de persistir.
type Session struct {
	Role   Role   `json:"role"`
	UserID string `json:"userId"`
}

// Pet pertenece a exactamente un Owner y nunca cambia de dueño.
type Pet struct {
	ID     string `json:"id"`
	Family string `json:"family"` // etiqueta de especie, texto libre (Собака, Кошка...)
	Gender string `json:"gender"`
	Age    int    `json:"age"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
}

type Owner struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Pets     []Pet  `json:"pets"`
}

type Sitter struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	City     string  `json:"city"`
	Age      int     `json:"age"`
	Rating   float64 `json:"rating"` // 0..5
	About    string  `json:"about"`
}

// ChatMessage es inmutable una vez creado; el chat de un pedido es append-only.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderRole Role   `json:"senderRole"`
	SenderID   string `json:"senderId"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"` // epoch millis al crear; no decrece dentro del chat
}

type Order struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	PetID   string `json:"petId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Address string `json:"address"`
	Comment string `json:"comment"`

	Status OrderStatus `json:"status"`

	// Applicants conserva orden de postulación, sin duplicados.
	// El sitter asignado siempre es miembro de applicants.
	Applicants       []string `json:"applicants"`
	AssignedSitterID *string  `json:"assignedSitterId"`

	Chat []ChatMessage `json:"chat"`
}

// State es el árbol de estado completo: la única fuente de verdad.
// Los nombres JSON son el contrato del blob persistido; cambiarlos
// rompe datos ya guardados.
type State struct {
	Auth      Session  `json:"auth"`
	AuthError string   `json:"authError"`
	Owners    []Owner  `json:"owners"`
	Sitters   []Sitter `json:"sitters"`
	Orders    []Order  `json:"orders"`
}

// copySlice duplica preservando "vacío pero no nil": en el wire y en el
// blob, colecciones vacías son [], nunca null.
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func copyOrder(ord Order) Order {
	cp := ord
	cp.Applicants = copySlice(ord.Applicants)
	cp.Chat = copySlice(ord.Chat)
	if ord.AssignedSitterID != nil {
		v := *ord.AssignedSitterID
		cp.AssignedSitterID = &v
	}
	return cp
}

// clone devuelve una copia profunda: los snapshots que salen del
// contenedor nunca comparten memoria con el estado vivo.
func (st State) clone() State {
	out := st

	out.Owners = make([]Owner, len(st.Owners))
	for i, o := range st.Owners {
		cp := o
		cp.Pets = copySlice(o.Pets)
		out.Owners[i] = cp
	}

	out.Sitters = copySlice(st.Sitters)

	out.Orders = make([]Order, len(st.Orders))
	for i, ord := range st.Orders {
		out.Orders[i] = copyOrder(ord)
	}

	return out
}

func (st *State) findOwner(id string) *Owner {
	for i := range st.Owners {
		if st.Owners[i].ID == id {
			return &st.Owners[i]
		}
	}
	return nil
}

func (st *State) findSitter(id string) *Sitter {
	for i := range st.Sitters {
		if st.Sitters[i].ID == id {
			return &st.Sitters[i]
		}
	}
	return nil
}

func (st *State) findOrder(id string) *Order {
	for i := range st.Orders {
		if st.Orders[i].ID == id {
			return &st.Orders[i]
		}
	}
	return nil
}

func hasApplicant(ord *Order, sitterID string) bool {
	for _, id := range ord.Applicants {
		if id == sitterID {
			return true
		}
	}
	return false
}
