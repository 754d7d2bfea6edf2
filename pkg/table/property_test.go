package table

import (
	"math/rand"
	"testing"

	"holdemtable-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

// drive a table through random operations and check the invariants hold at
// every reachable state
func TestTable_RandomWalkInvariants(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		r := rand.New(rand.NewSource(seed)) // nolint:gosec
		g := rng.NewSeeded(seed)
		tbl := New(6, g)

		for op := 0; op < 250; op++ {
			switch r.Intn(6) {
			case 0:
				if _, err := tbl.AddPlayer(); err != nil {
					assert.Equal(t, ErrTableFull, err)
				}
			case 1:
				if len(tbl.Players) > 0 {
					id := tbl.Players[r.Intn(len(tbl.Players))].ID
					assert.NoError(t, tbl.RemovePlayer(id))
				}
			case 2, 3:
				assert.NoError(t, tbl.AdvancePhase(g))
			case 4:
				assert.NoError(t, tbl.StartNewHand(g))
			case 5:
				assert.NoError(t, tbl.ResetHandToWaiting(g))
			}

			assert.NoError(t, tbl.checkInvariants(), "seed=%d op=%d", seed, op)
			assert.Equal(t, 52, cardsInPlay(tbl), "seed=%d op=%d", seed, op)

			if n := len(tbl.Players); n == 2 && tbl.GamePhase == Waiting {
				assert.Equal(t, tbl.DealerPosition, tbl.SmallBlindPosition)
				assert.Equal(t, (tbl.DealerPosition+1)%2, tbl.BigBlindPosition)
			}
		}
	}
}
