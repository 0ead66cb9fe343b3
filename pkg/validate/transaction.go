package validate

import (
	"strconv"
	"strings"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

// Message reports one validation failure, tagged with the offending field.
type Message struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// NewTransaction checks a transaction draft. An empty result means the
// draft may be submitted; any message blocks submission entirely.
func NewTransaction(draft domain.NewTransaction) []Message {
	var msgs []Message

	if strings.TrimSpace(draft.Text) == "" {
		msgs = append(msgs, Message{Field: "text", Text: "Text cannot be blank"})
	}

	if _, err := strconv.ParseFloat(draft.Amount, 64); err != nil {
		msgs = append(msgs, Message{Field: "amount", Text: "Please enter a number"})
	} else if TooManyDecimals(draft.Amount) {
		msgs = append(msgs, Message{Field: "amount", Text: "Please enter valid cents"})
	}

	return msgs
}

// TooManyDecimals reports whether an amount carries more than two digits
// after the decimal point.
func TooManyDecimals(amount string) bool {
	i := strings.IndexByte(amount, '.')
	if i < 0 {
		return false
	}
	return len(amount)-i-1 > 2
}
