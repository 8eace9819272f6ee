package console

import (
	"context"
	"fmt"
	"io"

	"seabattle/config"
	"seabattle/engine"
	"seabattle/fleet"
	"seabattle/types"
)

// Run plays one game against the computer, reading shots from in and
// writing boards and announcements to out.
func Run(ctx context.Context, cfg engine.GameConfig, sym config.ConfigSymbols, in io.Reader, out io.Writer, rnd fleet.Random) (engine.Outcome, error) {
	fmt.Fprint(out, Greeting())

	lines := engine.NewScannerLines(in, out, "Your move: ")
	human := engine.NewInteractiveTargeting(lines, func(msg string) {
		fmt.Fprintln(out, msg)
	})
	s := engine.NewGame(cfg, human, rnd)

	printBoards := func(h, c types.BoardState) {
		fmt.Fprintln(out, SideBySide(
			"Your board:", Render(h, sym),
			"Computer board:", Render(c, sym),
		))
	}

	s.OnNotice(func(side types.Side, msg string) {
		if side == types.Human {
			fmt.Fprintln(out, msg)
		}
	})
	s.OnUpdate(func(u engine.Update) {
		if u.Shot.Shooter == types.Computer {
			fmt.Fprintf(out, "Computer move: %s\n", engine.FormatCoord(u.Shot.Target))
		}
		fmt.Fprintln(out, Announce(u.Shot.Result))
		printBoards(u.Human, u.Computer)
	})

	printBoards(s.Snapshot())
	o, err := s.Run(ctx)
	if err != nil {
		return o, err
	}
	fmt.Fprintln(out, o.String())
	return o, nil
}

// Announce returns the line printed after a shot lands.
func Announce(r types.ShotResult) string {
	switch r {
	case types.Destroyed:
		return "Ship destroyed!"
	case types.Hit:
		return "Ship hit!"
	default:
		return "Miss!"
	}
}
