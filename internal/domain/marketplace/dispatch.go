package marketplace

import "context"

// CommandKind etiqueta la variante del comando. Una entrada por operación
// del contenedor.
type CommandKind string

const (
	CmdLogin          CommandKind = "login"
	CmdRegisterOwner  CommandKind = "registerOwner"
	CmdRegisterSitter CommandKind = "registerSitter"
	CmdLogout         CommandKind = "logout"
	CmdAddPet         CommandKind = "addPet"
	CmdCreateOrder    CommandKind = "createOrder"
	CmdApplyToOrder   CommandKind = "applyToOrder"
	CmdAssignSitter   CommandKind = "assignSitter"
	CmdSendMessage    CommandKind = "sendMessage"
)

// Command es la variante etiquetada: Kind decide qué payload se lee.
// Los payloads compuestos van por puntero para distinguir "ausente".
type Command struct {
	Kind CommandKind

	// login
	Role     Role
	Email    string
	Password string

	// register*
	Owner  *RegisterOwnerInput
	Sitter *RegisterSitterInput

	// addPet
	OwnerID string
	Pet     *PetInput

	// createOrder
	Order *CreateOrderInput

	// applyToOrder / assignSitter / sendMessage
	OrderID  string
	SitterID string

	// sendMessage
	SenderRole Role
	SenderID   string
	Text       string
}

// Dispatch rutea el comando a la operación correspondiente y devuelve el
// snapshot resultante. Kind desconocido o payload ausente: ErrInvalidInput,
// estado intacto.
func (s *Service) Dispatch(ctx context.Context, cmd Command) (State, error) {
	switch cmd.Kind {
	case CmdLogin:
		return s.Login(ctx, cmd.Role, cmd.Email, cmd.Password)

	case CmdRegisterOwner:
		if cmd.Owner == nil {
			return s.Snapshot(), ErrInvalidInput
		}
		return s.RegisterOwner(ctx, *cmd.Owner)

	case CmdRegisterSitter:
		if cmd.Sitter == nil {
			return s.Snapshot(), ErrInvalidInput
		}
		return s.RegisterSitter(ctx, *cmd.Sitter)

	case CmdLogout:
		return s.Logout(ctx)

	case CmdAddPet:
		if cmd.Pet == nil {
			return s.Snapshot(), ErrInvalidInput
		}
		return s.AddPet(ctx, cmd.OwnerID, *cmd.Pet)

	case CmdCreateOrder:
		if cmd.Order == nil {
			return s.Snapshot(), ErrInvalidInput
		}
		return s.CreateOrder(ctx, *cmd.Order)

	case CmdApplyToOrder:
		return s.ApplyToOrder(ctx, cmd.OrderID, cmd.SitterID)

	case CmdAssignSitter:
		return s.AssignSitter(ctx, cmd.OrderID, cmd.SitterID)

	case CmdSendMessage:
		return s.SendMessage(ctx, cmd.OrderID, cmd.SenderRole, cmd.SenderID, cmd.Text)

	default:
		return s.Snapshot(), ErrInvalidInput
	}
}
