package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInvalidLayout = errors.New("invalid layout")
	ErrMissingStart  = errors.New("missing start position")
)

// Layout symbols
const (
	FreeRune   = '.'
	WallRune   = '#'
	SeekerRune = 'S'
	HiderRune  = 'H'
)

// Layout is a grid together with the starting positions of both agents.
type Layout struct {
	Grid   Grid
	Seeker Position
	Hider  Position
}

// ParseLayout reads a layout from text rows. Both starts must appear exactly once.
func ParseLayout(lines []string) (Layout, error) {
	if len(lines) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	cols := len([]rune(lines[0]))
	if cols == 0 {
		return Layout{}, fmt.Errorf("%w: empty row", ErrInvalidLayout)
	}

	l := Layout{Grid: NewGrid(len(lines), cols)}
	seekers, hiders := 0, 0
	for r, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidLayout, r, len(row), cols)
		}
		for c, ch := range row {
			pos := Position{r, c}
			switch ch {
			case FreeRune:
			case WallRune:
				l.Grid.Set(pos, Wall)
			case SeekerRune:
				l.Seeker = pos
				seekers++
			case HiderRune:
				l.Hider = pos
				hiders++
			default:
				return Layout{}, fmt.Errorf("%w: unknown symbol %q at %v", ErrInvalidLayout, ch, pos)
			}
		}
	}

	if seekers != 1 || hiders != 1 {
		return Layout{}, fmt.Errorf("%w: found %d seeker and %d hider starts", ErrMissingStart, seekers, hiders)
	}
	return l, nil
}

// ReadLayout parses a layout from r, skipping blank lines.
func ReadLayout(r io.Reader) (Layout, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(lines)
}

// Lines renders the layout back to the text form accepted by ParseLayout.
func (l Layout) Lines() []string {
	return renderLines(l.Grid, l.Seeker, l.Hider)
}

func (l Layout) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Render draws g with both agents marked, one row per line.
func Render(g Grid, seeker, hider Position) string {
	return strings.Join(renderLines(g, seeker, hider), "\n")
}

func renderLines(g Grid, seeker, hider Position) []string {
	lines := make([]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < g.Cols(); c++ {
			pos := Position{r, c}
			switch {
			case pos == seeker:
				b.WriteRune(SeekerRune)
			case pos == hider:
				b.WriteRune(HiderRune)
			case g.At(pos) == Wall:
				b.WriteRune(WallRune)
			default:
				b.WriteRune(FreeRune)
			}
		}
		lines[r] = b.String()
	}
	return lines
}
