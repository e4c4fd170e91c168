package gammon

import (
	"bytes"
	"fmt"
)

// VerticalBar is the frame glyph separating board columns.
const VerticalBar rune = '│'

// Both players are shown the same frames. Point numbers are relative to
// the viewer, so each player sees their own home board at the lower right
// and bears off toward point 1.
var (
	boardTop    = []byte("+13-14-15-16-17-18-+---+19-20-21-22-23-24-+")
	boardBottom = []byte("+12-11-10--9--8--7-+---+-6--5--4--3--2--1-+")
)

// renderSpace returns the three character cell for the given checker
// position of a space. When a space holds more than five checkers the
// fifth cell shows the count instead of a glyph.
func renderSpace(checkers int8, pos int8) []byte {
	abs := checkers
	if abs < 0 {
		abs = -abs
	}
	if pos == 5 && abs > 5 {
		return []byte(fmt.Sprintf("%2d ", abs))
	}
	if pos <= 5 && abs >= pos {
		if checkers > 0 {
			return []byte(" x ")
		}
		return []byte(" o ")
	}
	return []byte("   ")
}

// BoardState renders the board as seen by the given player. The viewer's
// checkers move from the upper right toward the lower right, and the bar
// column shows the opponent's bar above the viewer's.
func (g *Game) BoardState(player int8) []byte {
	opponent := int8(1)
	if player == 1 {
		opponent = 2
	}

	var buf bytes.Buffer
	buf.Write(boardTop)
	buf.WriteByte('\n')
	for row := int8(0); row < 11; row++ {
		var pos int8
		if row < 6 {
			pos = row + 1
		} else {
			pos = 11 - row
		}
		buf.WriteRune(VerticalBar)
		for col := int8(0); col < 12; col++ {
			if col == 6 {
				buf.WriteRune(VerticalBar)
				if row < 5 {
					buf.Write(renderSpace(g.Board[barSpace(opponent)], row+1))
				} else {
					buf.Write(renderSpace(g.Board[barSpace(player)], 11-row))
				}
				buf.WriteRune(VerticalBar)
			}
			if row == 5 {
				buf.WriteString("   ")
				continue
			}
			var rel int8
			if row < 6 {
				rel = 13 + col
			} else {
				rel = 12 - col
			}
			buf.Write(renderSpace(g.Board[FlipSpace(rel, player)], pos))
		}
		buf.WriteRune(VerticalBar)
		buf.Write(g.rowLabel(row, player, opponent))
		buf.WriteByte('\n')
	}
	buf.Write(boardBottom)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func (g *Game) rowLabel(row int8, player int8, opponent int8) []byte {
	switch row {
	case 0:
		return g.playerLabel(opponent)
	case 2:
		return g.diceLabel(opponent)
	case 8:
		return g.diceLabel(player)
	case 10:
		return g.playerLabel(player)
	}
	return nil
}

func (g *Game) playerLabel(number int8) []byte {
	p := g.Player1
	glyph := "x"
	if number == 2 {
		p = g.Player2
		glyph = "o"
	}
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", number)
	}
	off := PlayerCheckers(g.Board[homeSpace(number)], number)
	return []byte(fmt.Sprintf("  %s %s (%d off)", glyph, name, off))
}

func (g *Game) diceLabel(number int8) []byte {
	if g.Turn == number && g.Roll1 != 0 {
		return []byte(fmt.Sprintf("  %d  %d", g.Roll1, g.Roll2))
	}
	return []byte("  -  -")
}
