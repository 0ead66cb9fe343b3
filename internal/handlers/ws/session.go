package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/command"
)

const (
	outBuffer    = 16
	writeTimeout = 10 * time.Second
)

// Session is one websocket connection. userID is empty until the client
// identifies itself and stable afterwards. A dedicated writer goroutine owns
// the connection's write side.
type Session struct {
	userID string
	conn   *websocket.Conn
	out    chan command.Command

	closeOnce sync.Once
}

func newSession(conn *websocket.Conn) *Session {
	return &Session{
		conn: conn,
		out:  make(chan command.Command, outBuffer),
	}
}

// push queues a command for this session only, bypassing the hub. Used for
// replies to the session's own requests.
func (s *Session) push(cmd command.Command) {
	select {
	case s.out <- cmd:
	default:
		zap.L().Warn("dropping reply for slow session", zap.String("user_id", s.userID))
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.out)
	})
}

// writeLoop drains the outbound queue onto the wire. It exits when the
// session is closed and takes the connection down with it.
func (s *Session) writeLoop() {
	defer s.conn.Close()

	for cmd := range s.out {
		data, err := command.Encode(cmd)
		if err != nil {
			zap.L().Error("can't encode command", zap.Error(err))
			continue
		}
		if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			zap.L().Warn("can't write to session", zap.Error(err))
			return
		}
	}
}
