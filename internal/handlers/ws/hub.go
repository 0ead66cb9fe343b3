package ws

import (
	"context"

	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/command"
)

type directed struct {
	userID string
	cmd    command.Command
}

// Hub routes server pushes to the live sessions of a user. All session
// bookkeeping happens inside Run, the channels are the only way in.
type Hub struct {
	register   chan *Session
	unregister chan *Session
	send       chan directed
	done       chan struct{}

	byUser map[string]map[*Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Session),
		unregister: make(chan *Session),
		send:       make(chan directed, 100),
		done:       make(chan struct{}),
		byUser:     make(map[string]map[*Session]struct{}),
	}
}

func (h *Hub) Register(s *Session) {
	select {
	case h.register <- s:
	case <-h.done:
	}
}

func (h *Hub) Unregister(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// SendToUser queues a command for every session the user currently has open.
// Unknown users are silently ignored, they simply have no sessions.
func (h *Hub) SendToUser(userID string, cmd command.Command) {
	select {
	case h.send <- directed{userID: userID, cmd: cmd}:
	case <-h.done:
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, sessions := range h.byUser {
				for s := range sessions {
					s.close()
				}
			}
			return

		case s := <-h.register:
			sessions, ok := h.byUser[s.userID]
			if !ok {
				sessions = make(map[*Session]struct{})
				h.byUser[s.userID] = sessions
			}
			sessions[s] = struct{}{}
			zap.L().Info("session registered", zap.String("user_id", s.userID))

		case s := <-h.unregister:
			if sessions, ok := h.byUser[s.userID]; ok {
				if _, ok := sessions[s]; ok {
					delete(sessions, s)
					if len(sessions) == 0 {
						delete(h.byUser, s.userID)
					}
					s.close()
					zap.L().Info("session unregistered", zap.String("user_id", s.userID))
				}
			}

		case msg := <-h.send:
			for s := range h.byUser[msg.userID] {
				select {
				case s.out <- msg.cmd:
				default:
					zap.L().Warn("dropping push for slow session", zap.String("user_id", msg.userID))
				}
			}
		}
	}
}
