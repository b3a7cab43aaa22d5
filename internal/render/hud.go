package render

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// DrawVesselStatus writes the flight panel for v at (x, y). station is the
// name of the station v is docked at, if any.
func DrawVesselStatus(buf *CellBuffer, x, y int, v game.VesselInfo, station string) {
	buf.WriteString(x, y, "--- Flight ---", ColorLightCyan, ColorBlack)

	if v.Dock.Docked {
		buf.WriteString(x, y+1, "Docked at "+station, ColorLightGreen, ColorBlack)
	} else {
		buf.WriteString(x, y+1, "Undocked", ColorLightGray, ColorBlack)
	}
	buf.WriteString(x, y+2, fmt.Sprintf("Mode  %s", v.Mode), ColorLightGray, ColorBlack)

	speed := v.Velocity.Len()
	buf.WriteString(x, y+3, fmt.Sprintf("Speed %6.2f", speed), ColorLightGray, ColorBlack)
	buf.Bar(x+13, y+3, 10, speed, 5, ColorLightBlue)

	p := v.Absolute.Pos
	buf.WriteString(x, y+4, fmt.Sprintf("Pos   %7.1f,%7.1f", p.X, p.Y), ColorDarkGray, ColorBlack)
	deg := game.NormalizeAngle(v.Absolute.Rot) * 180 / math.Pi
	buf.WriteString(x, y+5, fmt.Sprintf("Head  %5.1f", deg), ColorDarkGray, ColorBlack)
}

// DrawCargo writes the cargo hold manifest at (x, y).
func DrawCargo(buf *CellBuffer, x, y int, lines []game.Line) {
	buf.WriteString(x, y, "--- Cargo ---", ColorLightCyan, ColorBlack)
	if len(lines) == 0 {
		buf.WriteString(x, y+1, "Hold empty", ColorDarkGray, ColorBlack)
		return
	}
	for i, l := range lines {
		buf.WriteString(x, y+1+i, fmt.Sprintf("%-16s x%d", l.Item.Name, l.Quantity), ColorWhite, ColorBlack)
	}
}

// DrawComms writes the comms log at (x, y), oldest first.
func DrawComms(buf *CellBuffer, x, y int, msgs []game.Message) {
	buf.WriteString(x, y, "--- Comms ---", ColorLightCyan, ColorBlack)
	for i, msg := range msgs {
		buf.WriteString(x, y+1+i, msg.Text, MsgColor(msg.Priority), ColorBlack)
	}
}
