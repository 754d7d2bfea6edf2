package names

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const zeroUUID = "00000000-0000-0000-0000-000000000000"

func TestTableName(t *testing.T) {
	name, err := TableName(zeroUUID)
	assert.NoError(t, err)
	assert.Equal(t, "Quantum Vortex", name)

	id := uuid.New().String()
	a, err := TableName(id)
	assert.NoError(t, err)

	b, err := TableName(id)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlayerAlias(t *testing.T) {
	alias, err := PlayerAlias(zeroUUID)
	assert.NoError(t, err)
	assert.Equal(t, "Thunderous Mauler", alias)

	id := uuid.New().String()
	a, err := PlayerAlias(id)
	assert.NoError(t, err)

	b, err := PlayerAlias(id)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPick_InvalidIdentifier(t *testing.T) {
	for _, id := range []string{
		"",
		"not-a-uuid",
		"4b9e2f1a8d7c4e2ba5f91d3e6f8c9b0d",
		"urn:uuid:4b9e2f1a-8d7c-4e2b-a5f9-1d3e6f8c9b0d",
		"{4b9e2f1a-8d7c-4e2b-a5f9-1d3e6f8c9b0d}",
		"zb9e2f1a-8d7c-4e2b-a5f9-1d3e6f8c9b0d",
	} {
		_, err := TableName(id)
		assert.Equal(t, ErrInvalidIdentifier, err, id)

		_, err = PlayerAlias(id)
		assert.Equal(t, ErrInvalidIdentifier, err, id)
	}
}
