// Package names turns opaque UUIDs into stable, human-friendly display names.
// The same identifier always maps to the same "Adjective Noun" pair; distinct
// identifiers may collide, which is fine since the names are cosmetic.
package names

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidIdentifier is returned when the supplied id is not a canonical UUID
var ErrInvalidIdentifier = errors.New("identifier must be a canonical UUID")

// TableName returns the display name for a table identifier
func TableName(id string) (string, error) {
	return pick(id, tableAdjectives, tableNouns)
}

// PlayerAlias returns the display alias for a player identifier
func PlayerAlias(id string) (string, error) {
	return pick(id, playerAdjectives, playerNouns)
}

// pick selects one word from each list using the first two bytes of the UUID
func pick(id string, adjectives, nouns []string) (string, error) {
	if len(id) != 36 {
		return "", ErrInvalidIdentifier
	}

	u, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidIdentifier
	}

	adjective := adjectives[int(u[0])%len(adjectives)]
	noun := nouns[int(u[1])%len(nouns)]

	return fmt.Sprintf("%s %s", adjective, noun), nil
}
