package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/password-meter/strength"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var blue = ansi.ColorFunc("blue+b")
var green = ansi.ColorFunc("green+b")

// labelColor is a presentation-layer lookup from strength label to display
// color; the evaluator itself never colors anything.
func labelColor(label strength.Label) func(string) string {
	switch label {
	case strength.VeryStrong:
		return green
	case strength.Strong:
		return blue
	case strength.Medium:
		return yellow
	default:
		return red
	}
}
