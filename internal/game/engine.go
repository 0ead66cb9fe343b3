// Package game derives a word-game's display and outcome facts from its
// persisted fields. Every function is pure; ApplyGuess is the only place
// that writes Status.
package game

import (
	"fmt"
	"strings"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

// Attempts is the number of distinct wrong letters a player survives.
// The game is lost on the wrong letter after that.
const Attempts = 5

// GuessedLetters returns the set of distinct letters guessed so far.
func GuessedLetters(g domain.Game) map[rune]bool {
	set := make(map[rune]bool, len(g.Guesses))
	for _, r := range g.Guesses {
		set[r] = true
	}
	return set
}

// Progress masks the word with '_' for letters not yet guessed. The result
// always has exactly as many runes as the word.
func Progress(g domain.Game) string {
	guessed := GuessedLetters(g)
	var b strings.Builder
	for _, r := range g.Word {
		if guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Errors returns the guessed letters that appear nowhere in the word, in
// first-guessed order.
func Errors(g domain.Game) []rune {
	var wrong []rune
	seen := make(map[rune]bool)
	for _, r := range g.Guesses {
		if seen[r] {
			continue
		}
		seen[r] = true
		if !strings.ContainsRune(g.Word, r) {
			wrong = append(wrong, r)
		}
	}
	return wrong
}

// Lost reports whether the number of distinct wrong letters exceeds
// Attempts. Exactly Attempts wrong letters is still playable.
func Lost(g domain.Game) bool {
	return len(Errors(g)) > Attempts
}

// Won reports whether every distinct letter of the word has been guessed.
func Won(g domain.Game) bool {
	guessed := GuessedLetters(g)
	for _, r := range g.Word {
		if !guessed[r] {
			return false
		}
	}
	return true
}

func Summary(g domain.Game) string {
	switch g.Status {
	case domain.StatusWon:
		return "Won!"
	case domain.StatusLost:
		return "Lost."
	default:
		if len(g.Guesses) == 0 {
			return "New Game"
		}
		return fmt.Sprintf("%d attempts left", Attempts-len(Errors(g)))
	}
}

// ApplyGuess accepts a single-letter guess and returns the next game value.
// Terminal games absorb guesses unchanged. An accepted guess is appended
// once (set semantics), then Won/Lost are recomputed and Status is written
// as a cached derivation of Guesses.
func ApplyGuess(g domain.Game, letter string) domain.Game {
	if g.Status != domain.StatusPlaying || letter == "" {
		return g
	}
	r := []rune(letter)[0]
	if !strings.ContainsRune(g.Guesses, r) {
		g.Guesses += string(r)
	}
	switch {
	case Won(g):
		g.Status = domain.StatusWon
	case Lost(g):
		g.Status = domain.StatusLost
	}
	return g
}
