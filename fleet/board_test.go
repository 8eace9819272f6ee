package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seabattle/fleet"
	"seabattle/types"
)

func at(row, col int) types.Coord {
	return types.Coord{Row: row, Col: col}
}

func TestOutOfBounds(t *testing.T) {
	b := fleet.NewBoard(6)
	tests := []struct {
		c    types.Coord
		want bool
	}{
		{at(0, 0), false},
		{at(5, 5), false},
		{at(-1, 0), true},
		{at(0, -1), true},
		{at(6, 0), true},
		{at(0, 6), true},
		{at(10, 10), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.OutOfBounds(tt.c), "OutOfBounds(%s)", tt.c)
	}
}

func TestPlaceShip(t *testing.T) {
	t.Run("marks grid", func(t *testing.T) {
		b := fleet.NewBoard(6)
		require.NoError(t, b.PlaceShip(fleet.NewShip(at(1, 1), 2, types.Vertical)))
		assert.Equal(t, types.CellShip, b.Cell(at(1, 1)))
		assert.Equal(t, types.CellShip, b.Cell(at(2, 1)))
		// Margin is blocked but not drawn.
		assert.Equal(t, types.CellEmpty, b.Cell(at(0, 0)))
		assert.Len(t, b.Ships(), 1)
	})

	t.Run("diagonal neighbour rejected", func(t *testing.T) {
		b := fleet.NewBoard(6)
		require.NoError(t, b.PlaceShip(fleet.NewShip(at(0, 0), 1, types.Horizontal)))
		err := b.PlaceShip(fleet.NewShip(at(1, 1), 1, types.Horizontal))
		assert.ErrorIs(t, err, fleet.ErrInvalidPlacement)
		assert.NoError(t, b.PlaceShip(fleet.NewShip(at(2, 2), 1, types.Horizontal)))
		assert.Len(t, b.Ships(), 2)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		b := fleet.NewBoard(6)
		require.NoError(t, b.PlaceShip(fleet.NewShip(at(2, 0), 3, types.Horizontal)))
		err := b.PlaceShip(fleet.NewShip(at(0, 1), 3, types.Vertical))
		assert.ErrorIs(t, err, fleet.ErrInvalidPlacement)
		assert.Equal(t, types.CellEmpty, b.Cell(at(0, 1)), "rejected ship must not touch the grid")
	})

	t.Run("off the board rejected", func(t *testing.T) {
		b := fleet.NewBoard(6)
		assert.ErrorIs(t, b.PlaceShip(fleet.NewShip(at(0, 4), 3, types.Horizontal)), fleet.ErrInvalidPlacement)
		assert.ErrorIs(t, b.PlaceShip(fleet.NewShip(at(6, 0), 1, types.Horizontal)), fleet.ErrInvalidPlacement)
		assert.Empty(t, b.Ships())
	})

	t.Run("closed after begin", func(t *testing.T) {
		b := fleet.NewBoard(6)
		b.Begin()
		assert.ErrorIs(t, b.PlaceShip(fleet.NewShip(at(0, 0), 1, types.Horizontal)), fleet.ErrInvalidPlacement)
	})
}

func TestFireAtRoundTrip(t *testing.T) {
	b := fleet.NewBoard(6)
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(0, 0), 3, types.Horizontal)))
	b.Begin()

	want := []types.ShotResult{types.Hit, types.Hit, types.Destroyed}
	for i, w := range want {
		got, err := b.FireAt(at(0, i))
		require.NoError(t, err)
		assert.Equal(t, w, got, "shot %d", i)
		if i < 2 {
			assert.False(t, b.AllShipsDestroyed())
		}
	}
	assert.True(t, b.AllShipsDestroyed())
	assert.Equal(t, 1, b.Destroyed())

	// Revealed margin around the wreck.
	for _, c := range []types.Coord{at(1, 0), at(1, 1), at(1, 2), at(1, 3), at(0, 3)} {
		assert.Equal(t, types.CellMargin, b.Cell(c), "cell %s", c)
		_, err := b.FireAt(c)
		assert.ErrorIs(t, err, fleet.ErrAlreadyTargeted, "cell %s", c)
	}
	assert.Equal(t, types.CellEmpty, b.Cell(at(2, 0)))
}

func TestFireAtMiss(t *testing.T) {
	b := fleet.NewBoard(6)
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(0, 0), 2, types.Vertical)))
	b.Begin()

	// Margin cells are legal targets once combat starts.
	got, err := b.FireAt(at(0, 1))
	require.NoError(t, err)
	assert.Equal(t, types.Miss, got)
	assert.Equal(t, types.CellMiss, b.Cell(at(0, 1)))
}

func TestFireAtOutOfBounds(t *testing.T) {
	b := fleet.NewBoard(6)
	_, err := b.FireAt(at(10, 10))
	assert.ErrorIs(t, err, fleet.ErrOutOfBounds)
	_, err = b.FireAt(at(-1, 3))
	assert.ErrorIs(t, err, fleet.ErrOutOfBounds)
}

func TestFireAtTwice(t *testing.T) {
	b := fleet.NewBoard(4)
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(1, 1), 2, types.Horizontal)))
	b.Begin()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			c := at(row, col)
			if b.Fired(c) {
				continue
			}
			_, err := b.FireAt(c)
			require.NoError(t, err, "first shot at %s", c)
			for i := 0; i < 2; i++ {
				_, err = b.FireAt(c)
				assert.ErrorIs(t, err, fleet.ErrAlreadyTargeted, "repeat shot at %s", c)
			}
		}
	}
	assert.True(t, b.AllShipsDestroyed())
}

func TestDestroyedCountNeverExceedsShips(t *testing.T) {
	b := fleet.NewBoard(6)
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(0, 0), 1, types.Horizontal)))
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(3, 3), 2, types.Vertical)))
	b.Begin()

	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			b.FireAt(at(row, col))
			assert.LessOrEqual(t, b.Destroyed(), len(b.Ships()))
			allSunk := true
			for _, s := range b.Ships() {
				assert.GreaterOrEqual(t, s.Lives(), 0)
				if s.Lives() != 0 {
					allSunk = false
				}
			}
			assert.Equal(t, allSunk, b.AllShipsDestroyed())
		}
	}
	assert.True(t, b.AllShipsDestroyed())
}

func TestStateIsCopy(t *testing.T) {
	b := fleet.NewBoard(6)
	require.NoError(t, b.PlaceShip(fleet.NewShip(at(2, 2), 1, types.Horizontal)))
	b.Hidden = true
	b.Begin()

	st := b.State()
	assert.True(t, st.Hidden)
	assert.Equal(t, types.CellEmpty, st.Cell(at(2, 2)), "hidden ship reads as water")
	assert.Equal(t, types.CellShip, st.Cells[2][2])
	assert.Nil(t, st.LastShot)

	st.Cells[2][2] = types.CellMiss
	assert.Equal(t, types.CellShip, b.Cell(at(2, 2)))

	_, err := b.FireAt(at(2, 2))
	require.NoError(t, err)
	st = b.State()
	require.NotNil(t, st.LastShot)
	assert.Equal(t, at(2, 2), *st.LastShot)
	assert.Equal(t, 0, st.ShipsLeft())
	assert.True(t, st.Defeated())
}
