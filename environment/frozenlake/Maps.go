package frozenlake

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Cell letters used to describe a lake
const (
	Start  byte = 'S'
	Frozen byte = 'F'
	Hole   byte = 'H'
	Goal   byte = 'G'
)

// Maps holds the built-in lakes by name
var Maps = map[string][]string{
	"4x4": {
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	},
	"8x8": {
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	},
}

// DefaultCutoffs holds the default episode step limits of the built-in
// lakes
var DefaultCutoffs = map[string]int{
	"4x4": 100,
	"8x8": 200,
}

// GenerateRandomMap returns a random size x size lake which has a path
// from the start cell in the top left corner to the goal cell in the
// bottom right corner. Each other cell is frozen with probability p.
func GenerateRandomMap(size int, p float64, src rand.Source) ([]string,
	error) {
	if size < 2 {
		return nil, fmt.Errorf("generateRandomMap: size must be at least "+
			"2, have %d", size)
	}
	if p <= 0 || p > 1 {
		return nil, fmt.Errorf("generateRandomMap: p must be in (0, 1], "+
			"have %v", p)
	}

	hole := distuv.Bernoulli{P: 1 - p, Src: src}
	board := make([][]byte, size)
	for {
		for r := range board {
			board[r] = make([]byte, size)
			for c := range board[r] {
				if hole.Rand() == 1 {
					board[r][c] = Hole
				} else {
					board[r][c] = Frozen
				}
			}
		}
		board[0][0] = Start
		board[size-1][size-1] = Goal

		if reachable(board) {
			break
		}
	}

	desc := make([]string, size)
	for r := range board {
		desc[r] = string(board[r])
	}
	return desc, nil
}

// reachable returns whether a goal cell can be reached from the top
// left cell without falling into a hole
func reachable(board [][]byte) bool {
	rows, cols := len(board), len(board[0])
	discovered := make(map[[2]int]bool)
	frontier := [][2]int{{0, 0}}

	for len(frontier) > 0 {
		cell := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if discovered[cell] {
			continue
		}
		discovered[cell] = true

		for _, d := range [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			r, c := cell[0]+d[0], cell[1]+d[1]
			if r < 0 || r >= rows || c < 0 || c >= cols {
				continue
			}
			switch board[r][c] {
			case Goal:
				return true
			case Hole:
			default:
				frontier = append(frontier, [2]int{r, c})
			}
		}
	}
	return false
}
