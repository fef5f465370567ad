package engine

// Line is a run of ConnectN positions, ordered from its anchor outward.
type Line [ConnectN]Position

// directions are the four line orientations checked from every anchor:
// right, down, down-right and down-left.
var directions = [4]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// FindWin scans the whole board for a line of ConnectN pieces owned by p and
// returns the first one found.
func FindWin(b Board, p Player) (Line, bool) {
	if !p.Valid() {
		return Line{}, false
	}
	want := Occupied(p)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			for _, d := range directions {
				var line Line
				ok := true
				for i := 0; i < ConnectN; i++ {
					row, col := y+d.Row*i, x+d.Col*i
					if !b.InBounds(row, col) || b.At(row, col) != want {
						ok = false
						break
					}
					line[i] = Position{Row: row, Col: col}
				}
				if ok {
					return line, true
				}
			}
		}
	}
	return Line{}, false
}

// CheckForWin reports whether p has ConnectN in a row anywhere on the board.
func CheckForWin(b Board, p Player) bool {
	_, ok := FindWin(b, p)
	return ok
}

// CheckFilledBoard reports whether no cell on the board is empty.
func CheckFilledBoard(b Board) bool {
	for _, c := range b.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}
