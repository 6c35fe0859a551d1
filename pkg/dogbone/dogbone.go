// Package dogbone computes corner-relief circles for CNC-milled cavities.
// A round bit cannot produce a sharp internal corner; a dogbone relief is an
// extra circular cut placed diagonally at the corner so a square-edged
// mating part can seat. The processor is a pure geometric utility with no
// knowledge of cabinets; it is consumed by the slot/notch producers in the
// cabinet pipeline and invoked standalone by export layers to regenerate
// reliefs at output resolution.
package dogbone

import (
	"math"

	"github.com/chazu/millwork/pkg/geom"
)

// Relief is one corner-relief circle. The radius always equals half the bit
// diameter; the center sits outside the nominal cavity boundary by
// radius*sqrt(2) along the corner bisector, so the cutting circle is tangent
// to both edges adjacent to the corner.
type Relief struct {
	Center geom.Vec2 `json:"center"`
	Radius float64   `json:"radius"`
}

// Side names an edge of a notch rectangle.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// cornerRelief places one relief at a corner. prev and next are the
// boundary points adjacent to the corner; the region between the two edges
// (on the side their bisector points to) is air, so the relief center is
// pushed the opposite way, into the material.
//
// Degenerate input (an adjacent point coinciding with the corner, or the two
// edge directions exactly cancelling) yields a relief centered on the corner
// itself. This is a documented fallback: the cut is still millable, it just
// loses the diagonal placement.
func cornerRelief(corner, prev, next geom.Vec2, bitDiameter float64) Relief {
	r := bitDiameter / 2

	u := prev.Sub(corner)
	w := next.Sub(corner)
	if u.Length() == 0 || w.Length() == 0 {
		return Relief{Center: corner, Radius: r}
	}

	sum := u.Normalize().Add(w.Normalize())
	if sum.Length() == 0 {
		// Collinear edges: no corner to relieve.
		return Relief{Center: corner, Radius: r}
	}

	// sum points into the air between the two edges; negate to get the
	// inward (into-material) bisector.
	bisector := sum.Normalize().Scale(-1)
	center := corner.Add(bisector.Scale(r * math.Sqrt2))
	return Relief{Center: center, Radius: r}
}

// Rect returns reliefs for all four corners of a rectangular cavity (a dado
// pocket or through-slot). min is the cavity's minimum corner on the cutting
// face; width runs along +X, height along +Y. Every corner of a milled
// rectangle retains material on its outside, so all four receive a relief.
func Rect(min geom.Vec2, width, height, bitDiameter float64) []Relief {
	c00 := min
	c10 := geom.Vec2{X: min.X + width, Y: min.Y}
	c11 := geom.Vec2{X: min.X + width, Y: min.Y + height}
	c01 := geom.Vec2{X: min.X, Y: min.Y + height}

	return []Relief{
		cornerRelief(c00, c01, c10, bitDiameter),
		cornerRelief(c10, c00, c11, bitDiameter),
		cornerRelief(c11, c10, c01, bitDiameter),
		cornerRelief(c01, c11, c00, bitDiameter),
	}
}

// Notch returns reliefs for the two interior corners created by a
// rectangular notch cut into a panel edge. The notch rectangle is given by
// its minimum corner and size; open names the side of the rectangle that
// lies on the panel edge and is therefore not a cut. Only the two corners on
// the side opposite the opening are newly created by the cut and retain
// material; the corners on the open side are ordinary outline corners.
func Notch(min geom.Vec2, width, height float64, open Side, bitDiameter float64) []Relief {
	c00 := min
	c10 := geom.Vec2{X: min.X + width, Y: min.Y}
	c11 := geom.Vec2{X: min.X + width, Y: min.Y + height}
	c01 := geom.Vec2{X: min.X, Y: min.Y + height}

	switch open {
	case SideBottom:
		return []Relief{
			cornerRelief(c01, c00, c11, bitDiameter),
			cornerRelief(c11, c01, c10, bitDiameter),
		}
	case SideTop:
		return []Relief{
			cornerRelief(c00, c01, c10, bitDiameter),
			cornerRelief(c10, c00, c11, bitDiameter),
		}
	case SideLeft:
		return []Relief{
			cornerRelief(c10, c00, c11, bitDiameter),
			cornerRelief(c11, c10, c01, bitDiameter),
		}
	case SideRight:
		return []Relief{
			cornerRelief(c00, c10, c01, bitDiameter),
			cornerRelief(c01, c00, c11, bitDiameter),
		}
	default:
		return nil
	}
}

// Path returns reliefs for the internal corners of an arbitrary closed
// outline. The outline must be wound counter-clockwise with material on the
// inside; callers are responsible for the winding convention. A corner is
// internal (material-retaining) when the cross product of the incoming and
// outgoing edge vectors is negative, i.e. the boundary turns right.
//
// Consecutive duplicate points produce no relief for the degenerate corner.
func Path(outline []geom.Vec2, bitDiameter float64) []Relief {
	n := len(outline)
	if n < 3 {
		return nil
	}

	var reliefs []Relief
	for i := 0; i < n; i++ {
		prev := outline[(i-1+n)%n]
		corner := outline[i]
		next := outline[(i+1)%n]

		incoming := corner.Sub(prev)
		outgoing := next.Sub(corner)
		if incoming.Length() == 0 || outgoing.Length() == 0 {
			continue
		}
		if incoming.Cross(outgoing) >= 0 {
			continue // convex or collinear corner
		}
		reliefs = append(reliefs, cornerRelief(corner, prev, next, bitDiameter))
	}
	return reliefs
}
