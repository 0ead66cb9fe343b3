package domain

type GameStatus string

const (
	StatusPlaying GameStatus = "PLAYING"
	StatusWon     GameStatus = "WON"
	StatusLost    GameStatus = "LOST"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Game is the persisted word-game record. Word never changes after creation
// and Guesses only grows; Status is rewritten by the engine after every
// accepted guess.
type Game struct {
	ID         string     `json:"id"`
	Player     User       `json:"player"`
	Challenger User       `json:"challenger"`
	Word       string     `json:"word"`
	Guesses    string     `json:"guesses"`
	Status     GameStatus `json:"status"`
}

type NewGame struct {
	PlayerID     string `json:"playerId"`
	ChallengerID string `json:"challengerId"`
	Word         string `json:"word"`
}

type Transaction struct {
	ID     int64   `json:"id"`
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}

// NewTransaction is the unvalidated draft; Amount stays a string until the
// draft passes validation.
type NewTransaction struct {
	Text   string `json:"text"`
	Amount string `json:"amount"`
}
