package engine_test

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seabattle/engine"
	"seabattle/types"
)

func TestRandomTargetingInBounds(t *testing.T) {
	rt := engine.NewRandomTargeting(rand.New(rand.NewSource(42)))
	view := *types.NewBoardState(6)
	seen := make(map[types.Coord]bool)
	for i := 0; i < 2000; i++ {
		c, err := rt.NextTarget(context.Background(), view)
		require.NoError(t, err)
		require.True(t, c.Row >= 0 && c.Row < 6 && c.Col >= 0 && c.Col < 6, "target %s off the board", c)
		seen[c] = true
	}
	assert.Len(t, seen, 36, "every cell should come up eventually")
}

func TestRandomTargetingCancelled(t *testing.T) {
	rt := engine.NewRandomTargeting(rand.New(rand.NewSource(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rt.NextTarget(ctx, *types.NewBoardState(6))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInteractiveTargetingSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"",
		"hello",
		"1",
		"x 2",
		"2 3",
		"4 4",
	}, "\n")
	var out strings.Builder
	var notices []string
	it := engine.NewInteractiveTargeting(
		engine.NewScannerLines(strings.NewReader(input), &out, "Your move: "),
		func(msg string) { notices = append(notices, msg) },
	)

	view := *types.NewBoardState(6)
	c, err := it.NextTarget(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, types.Coord{Row: 1, Col: 2}, c)
	assert.Equal(t, []string{
		"Enter two coordinates!",
		"Enter two coordinates!",
		"Enter two coordinates!",
		"Enter numbers!",
	}, notices)
	assert.Equal(t, 5, strings.Count(out.String(), "Your move: "))

	c, err = it.NextTarget(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, types.Coord{Row: 3, Col: 3}, c)

	_, err = it.NextTarget(context.Background(), view)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineChannel(t *testing.T) {
	lines := make(engine.LineChannel, 1)
	it := engine.NewInteractiveTargeting(lines, nil)

	require.True(t, lines.Send("5 6"))
	assert.False(t, lines.Send("1 1"), "buffer is full")

	c, err := it.NextTarget(context.Background(), *types.NewBoardState(6))
	require.NoError(t, err)
	assert.Equal(t, types.Coord{Row: 4, Col: 5}, c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = it.NextTarget(ctx, *types.NewBoardState(6))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(lines)
	_, err = lines.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
