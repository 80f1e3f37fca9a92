package renderer

import (
	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/systems"
)

// TuftSource yields player tufts; positions are offsets from the player centre.
type TuftSource interface {
	Each(fn func(offset components.Position, body components.Body, tuft components.Tuft))
}

const mouthSegments = 8

// PlayerRenderer renders the cloud: body, tufts and a face that frowns under stress.
type PlayerRenderer struct{}

// NewPlayerRenderer creates a new player renderer.
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Draw renders the player at its current position.
func (r *PlayerRenderer) Draw(s Surface, p *systems.Player, tufts TuftSource) {
	s.FillCircle(p.X, p.Y, p.Radius, Cloud)

	if tufts != nil {
		tufts.Each(func(off components.Position, body components.Body, tuft components.Tuft) {
			if tuft.Opacity <= 0 {
				return
			}
			s.FillCircle(p.X+off.X, p.Y+off.Y, body.Radius, withOpacity(Cloud, tuft.Opacity))
		})
	}

	r.drawFace(s, p)
}

// drawFace draws two eyes and a mouth whose bend goes from a smile at zero
// stress to a frown at full stress.
func (r *PlayerRenderer) drawFace(s Surface, p *systems.Player) {
	eyeDX := p.Radius * 0.3
	eyeY := p.Y - p.Radius*0.2
	eyeR := max(p.Radius*0.08, 1)
	s.FillCircle(p.X-eyeDX, eyeY, eyeR, Face)
	s.FillCircle(p.X+eyeDX, eyeY, eyeR, Face)

	halfW := p.Radius * 0.35
	mouthY := p.Y + p.Radius*0.3
	bend := (0.5 - p.Stress) * p.Radius * 0.4 // positive bends down (smile)
	thick := max(p.Radius*0.06, 1)

	px, py := mouthPoint(p.X, mouthY, halfW, bend, 0)
	for i := 1; i <= mouthSegments; i++ {
		x, y := mouthPoint(p.X, mouthY, halfW, bend, float32(i)/mouthSegments)
		s.Line(px, py, x, y, thick, Face)
		px, py = x, y
	}
}

// mouthPoint returns the point at t in [0,1] along a parabola spanning
// [cx-halfW, cx+halfW] whose centre is displaced by bend.
func mouthPoint(cx, cy, halfW, bend, t float32) (float32, float32) {
	u := 2*t - 1
	return cx + u*halfW, cy + bend*(1-u*u)
}
