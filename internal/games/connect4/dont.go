package connect4

// DontButton is the button players are told not to press. Each press returns
// the next warning; the press after the last warning asks for a reset and
// starts the sequence over.
type DontButton struct {
	warnings []string
	presses  int
}

// NewDontButton creates a button with the given warnings, shown in order.
func NewDontButton(warnings []string) DontButton {
	return DontButton{warnings: append([]string(nil), warnings...)}
}

// Press returns the next warning, or reset=true once the warnings ran out.
func (d *DontButton) Press() (message string, reset bool) {
	if d.presses < len(d.warnings) {
		message = d.warnings[d.presses]
		d.presses++
		return message, false
	}
	d.presses = 0
	return "", true
}

// Presses returns how many warnings have been shown since the last reset.
func (d DontButton) Presses() int {
	return d.presses
}

// Clear forgets previous presses.
func (d *DontButton) Clear() {
	d.presses = 0
}
