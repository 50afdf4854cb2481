package pqueue

import "fmt"

// Element is a matrix cell tagged with the water level it was reached at.
// Elements are ordered by Priority only, row and col never break ties.
type Element struct {
	Priority int
	Row      int
	Col      int
}

// Less reports whether a must be extracted before b.
func Less(a, b Element) bool {
	return a.Priority < b.Priority
}

func (e Element) Format(f fmt.State, c rune) {
	f.Write([]byte(fmt.Sprintf("{priority:'%v', row:'%v', col:'%v'}", e.Priority, e.Row, e.Col)))
}
