// Package command defines the closed set of frames exchanged over the
// realtime channel. Every frame carries a lowercase string discriminator
// and a payload whose shape is fixed by that discriminator; decoding an
// unknown discriminator is an error, never a fallback to Empty.
package command

import (
	"encoding/json"
	"fmt"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

type Type string

const (
	TypeEmpty         Type = "empty"
	TypeLoadGames     Type = "load_games"
	TypeGuess         Type = "guess"
	TypeSetGame       Type = "set_game"
	TypeSetGames      Type = "set_games"
	TypeSetChallenge  Type = "set_challenge"
	TypeSetChallenges Type = "set_challenges"
	TypeNewGame       Type = "new_game"
	TypeSetUser       Type = "set_user"
)

// Command is implemented only by the variants in this package.
type Command interface {
	Type() Type
}

type Empty struct{}

func (Empty) Type() Type { return TypeEmpty }

// LoadGames asks the server for every game the user participates in.
type LoadGames struct {
	UserID string
}

func (LoadGames) Type() Type { return TypeLoadGames }

type Guess struct {
	GameID string `json:"gameId"`
	Letter string `json:"guess"`
}

func (Guess) Type() Type { return TypeGuess }

type NewGame struct {
	domain.NewGame
}

func (NewGame) Type() Type { return TypeNewGame }

type SetGame struct {
	Game domain.Game
}

func (SetGame) Type() Type { return TypeSetGame }

type SetGames struct {
	Games []domain.Game
}

func (SetGames) Type() Type { return TypeSetGames }

type SetChallenge struct {
	Game domain.Game
}

func (SetChallenge) Type() Type { return TypeSetChallenge }

type SetChallenges struct {
	Games []domain.Game
}

func (SetChallenges) Type() Type { return TypeSetChallenges }

type SetUser struct {
	UserID string
}

func (SetUser) Type() Type { return TypeSetUser }

type frame struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode serializes a command to its wire frame.
func Encode(c Command) ([]byte, error) {
	var payload any
	switch v := c.(type) {
	case Empty:
		payload = nil
	case LoadGames:
		payload = v.UserID
	case Guess:
		payload = v
	case NewGame:
		payload = v.NewGame
	case SetGame:
		payload = v.Game
	case SetGames:
		payload = v.Games
	case SetChallenge:
		payload = v.Game
	case SetChallenges:
		payload = v.Games
	case SetUser:
		payload = v.UserID
	default:
		return nil, fmt.Errorf("unsupported command type %q", c.Type())
	}

	f := frame{Type: c.Type()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("can't encode %q payload: %w", c.Type(), err)
		}
		f.Payload = raw
	}
	return json.Marshal(f)
}

// Decode parses a wire frame into its command variant. Malformed frames,
// unknown discriminators and payloads of the wrong shape all fail; the
// caller keeps its prior state and drops the message.
func Decode(data []byte) (Command, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("malformed command frame: %w", err)
	}

	switch f.Type {
	case TypeEmpty:
		return Empty{}, nil
	case TypeLoadGames:
		var userID string
		if err := decodePayload(f, &userID); err != nil {
			return nil, err
		}
		return LoadGames{UserID: userID}, nil
	case TypeGuess:
		var g Guess
		if err := decodePayload(f, &g); err != nil {
			return nil, err
		}
		return g, nil
	case TypeNewGame:
		var ng domain.NewGame
		if err := decodePayload(f, &ng); err != nil {
			return nil, err
		}
		return NewGame{NewGame: ng}, nil
	case TypeSetGame:
		var g domain.Game
		if err := decodePayload(f, &g); err != nil {
			return nil, err
		}
		return SetGame{Game: g}, nil
	case TypeSetGames:
		var gs []domain.Game
		if err := decodePayload(f, &gs); err != nil {
			return nil, err
		}
		return SetGames{Games: gs}, nil
	case TypeSetChallenge:
		var g domain.Game
		if err := decodePayload(f, &g); err != nil {
			return nil, err
		}
		return SetChallenge{Game: g}, nil
	case TypeSetChallenges:
		var gs []domain.Game
		if err := decodePayload(f, &gs); err != nil {
			return nil, err
		}
		return SetChallenges{Games: gs}, nil
	case TypeSetUser:
		var userID string
		if err := decodePayload(f, &userID); err != nil {
			return nil, err
		}
		return SetUser{UserID: userID}, nil
	default:
		return nil, fmt.Errorf("unknown command type %q", f.Type)
	}
}

func decodePayload(f frame, dst any) error {
	if len(f.Payload) == 0 {
		return fmt.Errorf("command %q requires a payload", f.Type)
	}
	if err := json.Unmarshal(f.Payload, dst); err != nil {
		return fmt.Errorf("can't decode %q payload: %w", f.Type, err)
	}
	return nil
}
