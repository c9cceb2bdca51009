package marketplace

import (
	"context"
	"strings"
)

// SendMessage agrega un mensaje al chat del pedido. El permiso vive acá,
// no en la capa de vista: tiene que haber sitter asignado, y el emisor
// debe ser el owner del pedido o ese sitter asignado.
func (s *Service) SendMessage(ctx context.Context, orderID string, senderRole Role, senderID, text string) (State, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Snapshot(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ord := s.state.findOrder(orderID)
	if ord == nil {
		return s.state.clone(), ErrNotFound
	}
	if ord.AssignedSitterID == nil {
		return s.state.clone(), ErrBadState
	}

	switch senderRole {
	case RoleOwner:
		if senderID != ord.OwnerID {
			return s.state.clone(), ErrForbidden
		}
	case RoleSitter:
		if senderID != *ord.AssignedSitterID {
			return s.state.clone(), ErrForbidden
		}
	default:
		return s.state.clone(), ErrInvalidInput
	}

	ts := s.now().UnixMilli()
	// los timestamps del chat no decrecen, aunque el reloj retroceda
	if n := len(ord.Chat); n > 0 && ord.Chat[n-1].Timestamp > ts {
		ts = ord.Chat[n-1].Timestamp
	}

	ord.Chat = append(ord.Chat, ChatMessage{
		ID:         s.newID("msg"),
		SenderRole: senderRole,
		SenderID:   senderID,
		Text:       text,
		Timestamp:  ts,
	})

	s.persist(ctx, "sendMessage")
	return s.state.clone(), nil
}
