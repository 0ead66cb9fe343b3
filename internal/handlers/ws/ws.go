// Package ws is the realtime game surface. Clients speak the tagged command
// protocol over a websocket: they identify themselves, ask for their games
// and send guesses, and both participants of a game get the updated state
// pushed back.
package ws

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/command"
	"github.com/hangmanlive/hangmanlive/internal/domain"
)

type GameService interface {
	NewGame(ctx context.Context, draft domain.NewGame) (*domain.Game, error)
	Guess(ctx context.Context, gameID, letter string) (*domain.Game, error)
	GamesByPlayer(ctx context.Context, userID string) ([]domain.Game, error)
	GamesByChallenger(ctx context.Context, userID string) ([]domain.Game, error)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type GameHandler struct {
	hub         *Hub
	gameService GameService
}

func New(hub *Hub, gameService GameService) *GameHandler {
	return &GameHandler{
		hub:         hub,
		gameService: gameService,
	}
}

// ServeWS upgrades the request and runs the session's read loop until the
// client goes away. Malformed frames are dropped, the session survives them.
func (h *GameHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("can't upgrade to websocket", zap.Error(err))
		return
	}

	session := newSession(conn)
	go session.writeLoop()

	defer func() {
		if session.userID != "" {
			h.hub.Unregister(session)
		} else {
			session.close()
			conn.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		cmd, err := command.Decode(data)
		if err != nil {
			zap.L().Warn("dropping malformed command", zap.Error(err))
			continue
		}

		h.dispatch(r.Context(), session, cmd)
	}
}

func (h *GameHandler) dispatch(ctx context.Context, session *Session, cmd command.Command) {
	switch v := cmd.(type) {
	case command.Empty:
		// keepalive, nothing to do

	case command.SetUser:
		if session.userID != "" {
			zap.L().Warn("session already identified", zap.String("user_id", session.userID))
			return
		}
		session.userID = v.UserID
		h.hub.Register(session)

	case command.LoadGames:
		h.loadGames(ctx, session, v.UserID)

	case command.Guess:
		game, err := h.gameService.Guess(ctx, v.GameID, strings.ToLower(v.Letter))
		if err != nil {
			zap.L().Warn("guess failed", zap.String("game_id", v.GameID), zap.Error(err))
			return
		}
		h.pushGame(game)

	case command.NewGame:
		game, err := h.gameService.NewGame(ctx, v.NewGame)
		if err != nil {
			zap.L().Warn("new game failed", zap.Error(err))
			return
		}
		h.pushGame(game)

	default:
		// server-push types have no meaning coming from a client
		zap.L().Warn("dropping unexpected command", zap.String("type", string(cmd.Type())))
	}
}

// loadGames answers only the asking session, not every session of the user.
func (h *GameHandler) loadGames(ctx context.Context, session *Session, userID string) {
	games, err := h.gameService.GamesByPlayer(ctx, userID)
	if err != nil {
		zap.L().Warn("can't load games", zap.String("user_id", userID), zap.Error(err))
		return
	}
	challenges, err := h.gameService.GamesByChallenger(ctx, userID)
	if err != nil {
		zap.L().Warn("can't load challenges", zap.String("user_id", userID), zap.Error(err))
		return
	}

	session.push(command.SetGames{Games: games})
	session.push(command.SetChallenges{Games: challenges})
}

// pushGame fans the updated game out to both participants. The player sees
// it as their game, the challenger as a challenge they are watching.
func (h *GameHandler) pushGame(game *domain.Game) {
	h.hub.SendToUser(game.Player.ID, command.SetGame{Game: *game})
	h.hub.SendToUser(game.Challenger.ID, command.SetChallenge{Game: *game})
}
