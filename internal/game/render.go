package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	cellWidth = 6
	separator = "-------------"
)

// mustRender panics on a malformed board: SetMove only ever writes X or O, so a
// foreign value means the board was corrupted outside the contract.
func mustRender(err error) {
	if err != nil {
		panic(err)
	}
}

// symbol maps a cell to its single-character glyph.
func symbol(cell Mark, empty string) (string, error) {
	switch cell {
	case Empty:
		return empty, nil
	case X, O:
		return string(cell), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrMalformedCell, string(cell))
	}
}

// renderGrid draws a boxed board:
//
//	-------------
//	| X |   | O |
//	-------------
func renderGrid(out io.Writer, state State) error {
	var sb strings.Builder
	for _, row := range state {
		sb.WriteString(separator + "\n")
		for _, cell := range row {
			glyph, err := symbol(cell, " ")
			if err != nil {
				return err
			}
			sb.WriteString("| " + glyph + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator + "\n")

	_, _ = io.WriteString(out, sb.String())

	return nil
}

// renderNumberedBoard draws the board with cells numbered 1..size² so a human
// knows how to address them.
func renderNumberedBoard(out io.Writer, size int) {
	var sb strings.Builder
	sb.WriteString("\nGame board:\n")
	for i := 0; i < size; i++ {
		numbers := make([]string, size)
		for j := range numbers {
			numbers[j] = strconv.Itoa(i*size + j + 1)
		}
		sb.WriteString(separator + "\n")
		sb.WriteString("| " + strings.Join(numbers, " | ") + " |\n")
	}
	sb.WriteString(separator + "\n\n")

	_, _ = io.WriteString(out, sb.String())
}

func renderGomokuIntro(out io.Writer, size int) {
	_, _ = io.WriteString(out, "\nGame board. Type 'row,column' to select move. For example, '0,0' selects top left move.\n")
	mustRender(renderIndexedGrid(out, NewState(size)))
	_, _ = io.WriteString(out, "\n")
}

// renderIndexedGrid draws a large board with row and column indices and cells
// centered in fixed-width columns.
func renderIndexedGrid(out io.Writer, state State) error {
	var sb strings.Builder
	sb.WriteString("\n  ")
	for x := range state {
		fmt.Fprintf(&sb, "%*d", cellWidth, x)
	}
	sb.WriteString("\n\n")

	for i, row := range state {
		fmt.Fprintf(&sb, "%3d  ", i)
		for _, cell := range row {
			glyph, err := symbol(cell, "_")
			if err != nil {
				return err
			}
			sb.WriteString(center(glyph, cellWidth))
		}
		sb.WriteString("\n\n")
	}

	_, _ = io.WriteString(out, sb.String())

	return nil
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
