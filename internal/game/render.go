package game

import (
	"fmt"

	"github.com/slipway-games/slipway/internal/core"
	"github.com/slipway-games/slipway/internal/sim"
)

// Visual characters for rendering.
const (
	BallChar     = '●'
	EdgeChar     = '█'
	CenterChar   = '·'
	GateChar     = '▌'
	TrailChar    = '∙'
	SurfaceChar  = '─'
	AirborneBall = '○'
)

// View tuning: how far ahead the camera looks and how wide a track
// unit appears at the near plane.
const (
	viewDepth    = 90.0 // Units of arc length visible ahead
	focalLength  = 22.0 // Perspective shrink factor
	lateralScale = 5.0  // Screen columns per track unit at the near plane
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	pose, err := g.world.PlayerPose()
	if err != nil {
		dst.DrawTextCentered(dst.Height()/2, "generating track...")
		return
	}

	w, h := dst.Width(), dst.Height()
	horizon := 2
	nearRow := h - 3
	rows := nearRow - horizon
	if rows < 4 || w < 20 {
		return
	}

	player := g.world.Player()
	centerX := float64(w) / 2

	// Ribbon, far rows first so near geometry overdraws.
	for row := 0; row <= rows; row++ {
		depth := viewDepth * float64(rows-row) / float64(rows)
		y := horizon + row

		sample, serr := g.world.Track().SampleAt(pose.Distance + depth)
		if serr != nil {
			continue
		}

		rel := sample.Position.Sub(pose.Position)
		scale := focalLength / (focalLength + depth)
		cx := centerX + rel.Dot(pose.Right)*lateralScale*scale
		half := g.world.Track().HalfWidth() * lateralScale * scale

		left := int(cx - half)
		right := int(cx + half)
		dst.SetColored(left, y, EdgeChar, ColorForHeight(rel.Dot(pose.Up)))
		dst.SetColored(right, y, EdgeChar, ColorForHeight(rel.Dot(pose.Up)))
		if row%3 == 0 {
			dst.SetColored(int(cx), y, CenterChar, core.ColorGray)
		}
	}

	g.drawGates(dst, pose, centerX, horizon, rows)
	g.drawPlayer(dst, pose, player, centerX, horizon, rows)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "RUN OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()))
	}
}

// ColorForHeight shades ribbon edges by their height relative to the
// player, hinting at upcoming slope.
func ColorForHeight(dy float64) core.Color {
	switch {
	case dy > 2.0:
		return core.ColorBrightCyan
	case dy < -2.0:
		return core.ColorBlue
	default:
		return core.ColorCyan
	}
}

// drawGates renders in-play gates at their projected depth.
func (g *Game) drawGates(dst *core.Screen, pose sim.Pose, centerX float64, horizon, rows int) {
	for _, gate := range g.world.Gates() {
		depth := gate.Distance - pose.Distance
		if depth < 0 || depth > viewDepth {
			continue
		}
		row := rows - int(depth/viewDepth*float64(rows))
		y := horizon + row

		sample, err := g.world.Track().SampleAt(gate.Distance)
		if err != nil {
			continue
		}
		rel := sample.Position.Sub(pose.Position)
		scale := focalLength / (focalLength + depth)
		cx := centerX + rel.Dot(pose.Right)*lateralScale*scale
		half := g.world.Track().HalfWidth() * lateralScale * scale

		dst.SetColored(int(cx-half)-1, y, GateChar, core.ColorBrightYellow)
		dst.SetColored(int(cx+half)+1, y, GateChar, core.ColorBrightYellow)
		label := fmt.Sprintf("%d", gate.Index)
		dst.DrawTextColored(int(cx)-len(label)/2, y, label, core.ColorYellow)
	}
}

// drawPlayer renders the ball and its trail.
func (g *Game) drawPlayer(dst *core.Screen, pose sim.Pose, player *sim.Player, centerX float64, horizon, rows int) {
	y := horizon + rows
	x := int(centerX + player.Lateral*lateralScale)

	if player.OnTrack() {
		dst.SetColored(x, y, BallChar, core.ColorOrange)
	} else {
		// Airborne: offset vertically by the height above/below the
		// surface at the held distance.
		dy := player.Position.Sub(pose.Position).Dot(pose.Up)
		ax := int(centerX + player.Position.Sub(pose.Position).Dot(pose.Right)*lateralScale)
		dst.SetColored(ax, y-int(dy/2), AirborneBall, core.ColorBrightWhite)
	}

	for i, p := range player.Trail() {
		if i == 0 || i%4 != 0 {
			continue
		}
		rel := p.Sub(pose.Position)
		behind := -rel.Dot(pose.Forward)
		if behind < 0 {
			continue
		}
		tx := int(centerX + rel.Dot(pose.Right)*lateralScale)
		dst.SetColored(tx, y+int(behind/6), TrailChar, core.ColorGray)
	}
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()
	dst.DrawText(2, 0, fmt.Sprintf(" Gate: %d ", g.world.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf(" %.0f m ", p.Distance))

	speed := fmt.Sprintf(" %.1f u/s ", p.ForwardSpeed)
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed)

	if !p.OnTrack() {
		dst.DrawTextColored(2, 1, " AIRBORNE ", core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
