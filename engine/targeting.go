package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"seabattle/fleet"
	"seabattle/types"
)

// RandomTargeting fires at uniformly random cells. It does not avoid cells
// already shot at; the board rejects those and the player asks again.
type RandomTargeting struct {
	rnd fleet.Random
}

// NewRandomTargeting creates a random targeting strategy.
func NewRandomTargeting(rnd fleet.Random) *RandomTargeting {
	return &RandomTargeting{rnd: rnd}
}

// NextTarget returns a random cell on the enemy board.
func (r *RandomTargeting) NextTarget(ctx context.Context, enemy types.BoardState) (types.Coord, error) {
	if err := ctx.Err(); err != nil {
		return types.Coord{}, err
	}
	return types.Coord{Row: r.rnd.Intn(enemy.Size), Col: r.rnd.Intn(enemy.Size)}, nil
}

// LineSource supplies raw lines of player input.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// InteractiveTargeting reads "row col" lines from a LineSource until one is
// well formed. Malformed lines are reported through notify and skipped.
type InteractiveTargeting struct {
	lines  LineSource
	notify func(msg string)
}

// NewInteractiveTargeting creates a targeting strategy driven by player input.
// notify may be nil.
func NewInteractiveTargeting(lines LineSource, notify func(msg string)) *InteractiveTargeting {
	if notify == nil {
		notify = func(string) {}
	}
	return &InteractiveTargeting{lines: lines, notify: notify}
}

// NextTarget blocks until the player enters a well-formed target.
func (t *InteractiveTargeting) NextTarget(ctx context.Context, enemy types.BoardState) (types.Coord, error) {
	for {
		line, err := t.lines.ReadLine(ctx)
		if err != nil {
			return types.Coord{}, err
		}
		c, err := ParseTarget(line)
		if err != nil {
			t.notify(inputNotice(err))
			continue
		}
		return c, nil
	}
}

// ScannerLines reads lines from r, writing prompt to w before each one.
type ScannerLines struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScannerLines creates a line source over a reader such as os.Stdin.
func NewScannerLines(r io.Reader, w io.Writer, prompt string) *ScannerLines {
	return &ScannerLines{
		scanner: bufio.NewScanner(r),
		out:     w,
		prompt:  prompt,
	}
}

// ReadLine prompts and reads one line. It returns io.EOF once input is exhausted.
func (s *ScannerLines) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.prompt != "" {
		fmt.Fprint(s.out, s.prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// LineChannel is a line source fed by another goroutine, such as a UI.
type LineChannel chan string

// ReadLine waits for the next line or for ctx to be done.
// A closed channel reads as io.EOF.
func (c LineChannel) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Send offers a line without blocking. It returns false if nobody is
// waiting for input and the buffer is full.
func (c LineChannel) Send(line string) bool {
	select {
	case c <- line:
		return true
	default:
		return false
	}
}
