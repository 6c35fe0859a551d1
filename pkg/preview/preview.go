// Package preview turns assembled cabinet components into triangle meshes
// for 3D rendering. Each panel becomes a solid box with its subtractive
// features cut away, positioned in assembly space, so the UI can show the
// cabinet exactly as the CNC output will produce it.
package preview

import (
	"fmt"
	"math"

	"github.com/chazu/millwork/pkg/cabinet"
	"github.com/chazu/millwork/pkg/geom"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// meshCells controls marching cubes tessellation resolution per component.
const meshCells = 96

// cutOverrun extends through-cuts past both faces so boolean subtraction
// leaves no zero-thickness skin.
const cutOverrun = 1.0

// Meshes produces one render mesh per component of the assembly, in
// assembly order.
func Meshes(asm *cabinet.Assembly) ([]*Mesh, error) {
	if asm == nil {
		return nil, nil
	}

	meshes := make([]*Mesh, 0, len(asm.Components))
	for i := range asm.Components {
		m, err := ComponentMesh(&asm.Components[i])
		if err != nil {
			return nil, fmt.Errorf("preview: component %s: %w", asm.Components[i].ID, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// ComponentMesh builds the component's solid and tessellates it.
func ComponentMesh(c *cabinet.Component) (*Mesh, error) {
	solid, err := Solid(c)
	if err != nil {
		return nil, err
	}

	m := toMesh(solid)
	m.ComponentID = c.ID
	m.Label = c.Label
	return m, nil
}

// Solid constructs the component's solid geometry in assembly space: its
// panel box minus every machining feature.
func Solid(c *cabinet.Component) (sdf.SDF3, error) {
	base, err := minCornerBox(vec3(c.Position), c.Dimensions)
	if err != nil {
		return nil, err
	}

	if len(c.Features) == 0 {
		return base, nil
	}

	f, err := frameFor(c)
	if err != nil {
		return nil, err
	}

	cuts := make([]sdf.SDF3, 0, len(c.Features))
	for _, feat := range c.Features {
		cut, err := featureSolid(c, f, feat)
		if err != nil {
			return nil, err
		}
		if cut != nil {
			cuts = append(cuts, cut)
		}
	}
	if len(cuts) == 0 {
		return base, nil
	}

	return sdf.Difference3D(base, sdf.Union3D(cuts...)), nil
}

// frame maps a component's 2D cutting-face coordinates into assembly space.
// origin is the assembly position of face point (0,0) on the panel surface
// the machining enters through; normal is the unit vector from that surface
// into the material.
type frame struct {
	origin    v3.Vec
	xAxis     v3.Vec
	yAxis     v3.Vec
	normal    v3.Vec
	thickness float64
}

// at returns the assembly-space surface point for face coordinates (x, y).
func (f frame) at(x, y float64) v3.Vec {
	return v3.Vec{
		X: f.origin.X + f.xAxis.X*x + f.yAxis.X*y,
		Y: f.origin.Y + f.xAxis.Y*x + f.yAxis.Y*y,
		Z: f.origin.Z + f.xAxis.Z*x + f.yAxis.Z*y,
	}
}

// frameFor derives the cutting-face frame from the component's role.
// Machining is referenced from the interior-facing surface. Side panel X
// runs from the front edge; the right panel face is mirrored.
func frameFor(c *cabinet.Component) (frame, error) {
	p := vec3(c.Position)
	w, h, d := c.Dimensions[0], c.Dimensions[1], c.Dimensions[2]

	switch c.Role {
	case cabinet.RoleSidePanelLeft:
		return frame{
			origin:    v3.Vec{X: p.X + w, Y: p.Y, Z: p.Z},
			xAxis:     v3.Vec{Z: 1},
			yAxis:     v3.Vec{Y: 1},
			normal:    v3.Vec{X: -1},
			thickness: w,
		}, nil
	case cabinet.RoleSidePanelRight:
		// Mirrored face: x runs back to front in assembly space.
		return frame{
			origin:    v3.Vec{X: p.X, Y: p.Y, Z: p.Z + d},
			xAxis:     v3.Vec{Z: -1},
			yAxis:     v3.Vec{Y: 1},
			normal:    v3.Vec{X: 1},
			thickness: w,
		}, nil
	case cabinet.RoleTopPanel:
		return frame{
			origin:    v3.Vec{X: p.X, Y: p.Y, Z: p.Z},
			xAxis:     v3.Vec{X: 1},
			yAxis:     v3.Vec{Z: 1},
			normal:    v3.Vec{Y: 1},
			thickness: h,
		}, nil
	case cabinet.RoleBottomPanel:
		return frame{
			origin:    v3.Vec{X: p.X, Y: p.Y + h, Z: p.Z},
			xAxis:     v3.Vec{X: 1},
			yAxis:     v3.Vec{Z: 1},
			normal:    v3.Vec{Y: -1},
			thickness: h,
		}, nil
	case cabinet.RoleDrawerSide, cabinet.RoleRunnerStrip:
		return frame{
			origin:    v3.Vec{X: p.X + w, Y: p.Y, Z: p.Z},
			xAxis:     v3.Vec{Z: 1},
			yAxis:     v3.Vec{Y: 1},
			normal:    v3.Vec{X: -1},
			thickness: w,
		}, nil
	case cabinet.RoleFixedShelf, cabinet.RoleAdjustableShelf, cabinet.RoleDrawerBottom:
		return frame{
			origin:    v3.Vec{X: p.X, Y: p.Y + h, Z: p.Z},
			xAxis:     v3.Vec{X: 1},
			yAxis:     v3.Vec{Z: 1},
			normal:    v3.Vec{Y: -1},
			thickness: h,
		}, nil
	case cabinet.RoleBackPanel, cabinet.RoleToeKickPanel,
		cabinet.RoleDrawerFront, cabinet.RoleDrawerBack:
		return frame{
			origin:    v3.Vec{X: p.X, Y: p.Y, Z: p.Z},
			xAxis:     v3.Vec{X: 1},
			yAxis:     v3.Vec{Y: 1},
			normal:    v3.Vec{Z: 1},
			thickness: d,
		}, nil
	default:
		return frame{}, fmt.Errorf("no cutting face frame for role %q", c.Role)
	}
}

// featureSolid builds the subtractive solid for one feature, positioned in
// assembly space.
func featureSolid(c *cabinet.Component, f frame, feat cabinet.Feature) (sdf.SDF3, error) {
	switch v := feat.(type) {
	case cabinet.Hole:
		return boreSolid(f, v.Pos, v.Diameter/2, v.Depth)

	case cabinet.Countersink:
		pilot, err := boreSolid(f, v.Pos, v.PilotDiameter/2, v.PilotDepth)
		if err != nil {
			return nil, err
		}
		recess, err := boreSolid(f, v.Pos, v.CountersinkDiameter/2, v.CountersinkDepth)
		if err != nil {
			return nil, err
		}
		return sdf.Union3D(pilot, recess), nil

	case cabinet.Slot:
		return slotSolid(f, v)

	case cabinet.Notch:
		min := f.at(v.Pos.X, v.Pos.Y)
		return cutBox(f, min, f.at(v.Pos.X+v.Width, v.Pos.Y+v.Height), 0)

	default:
		return nil, fmt.Errorf("unknown feature kind %q", feat.Kind())
	}
}

// boreSolid is a cylinder entering the face at pos, drilled to depth along
// the frame normal. Depth 0 bores through the panel.
func boreSolid(f frame, pos geom.Vec2, radius, depth float64) (sdf.SDF3, error) {
	through := depth <= 0
	total := depth + cutOverrun
	if through {
		total = f.thickness + 2*cutOverrun
	}

	s, err := sdf.Cylinder3D(total, radius, 0)
	if err != nil {
		return nil, err
	}

	// Cylinder3D runs along Z; align it to the drilling axis.
	switch {
	case f.normal.X != 0:
		s = sdf.Transform3D(s, sdf.RotateY(math.Pi/2))
	case f.normal.Y != 0:
		s = sdf.Transform3D(s, sdf.RotateX(math.Pi/2))
	}

	// Start the cut just proud of the entry surface. A through bore
	// overruns both faces; a stopped bore ends exactly at its depth.
	surface := f.at(pos.X, pos.Y)
	center := v3.Vec{
		X: surface.X + f.normal.X*(total/2-cutOverrun),
		Y: surface.Y + f.normal.Y*(total/2-cutOverrun),
		Z: surface.Z + f.normal.Z*(total/2-cutOverrun),
	}
	return sdf.Transform3D(s, sdf.Translate3d(center)), nil
}

// slotSolid is the swept groove along the slot's centerline path: one box
// per axis-aligned segment, Width across the path, Depth into the face.
func slotSolid(f frame, slot cabinet.Slot) (sdf.SDF3, error) {
	if len(slot.Path) < 2 {
		return nil, fmt.Errorf("slot path needs at least 2 points, got %d", len(slot.Path))
	}

	var segs []sdf.SDF3
	for i := 1; i < len(slot.Path); i++ {
		a, b := slot.Path[i-1], slot.Path[i]

		// Expand the centerline to the slot width across the direction
		// of travel.
		half := slot.Width / 2
		var lo, hi geom.Vec2
		switch {
		case a.X == b.X: // vertical segment
			lo = geom.Vec2{X: a.X - half, Y: math.Min(a.Y, b.Y)}
			hi = geom.Vec2{X: a.X + half, Y: math.Max(a.Y, b.Y)}
		case a.Y == b.Y: // horizontal segment
			lo = geom.Vec2{X: math.Min(a.X, b.X), Y: a.Y - half}
			hi = geom.Vec2{X: math.Max(a.X, b.X), Y: a.Y + half}
		default:
			return nil, fmt.Errorf("slot segment %d is not axis-aligned", i)
		}

		seg, err := cutBox(f, f.at(lo.X, lo.Y), f.at(hi.X, hi.Y), slot.Depth)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	if len(segs) == 1 {
		return segs[0], nil
	}
	return sdf.Union3D(segs...), nil
}

// cutBox builds a box between two face-surface corners, extruded into the
// material by depth along the frame normal. Depth 0 cuts through.
func cutBox(f frame, a, b v3.Vec, depth float64) (sdf.SDF3, error) {
	through := depth <= 0
	if through {
		depth = f.thickness
	}

	// Push one corner into the material, pull the other slightly out of
	// the entry face; through cuts overrun the exit face too.
	exit := depth
	if through {
		exit += cutOverrun
	}
	aa := v3.Vec{
		X: a.X - f.normal.X*cutOverrun,
		Y: a.Y - f.normal.Y*cutOverrun,
		Z: a.Z - f.normal.Z*cutOverrun,
	}
	bb := v3.Vec{
		X: b.X + f.normal.X*exit,
		Y: b.Y + f.normal.Y*exit,
		Z: b.Z + f.normal.Z*exit,
	}

	min := v3.Vec{X: math.Min(aa.X, bb.X), Y: math.Min(aa.Y, bb.Y), Z: math.Min(aa.Z, bb.Z)}
	max := v3.Vec{X: math.Max(aa.X, bb.X), Y: math.Max(aa.Y, bb.Y), Z: math.Max(aa.Z, bb.Z)}

	size := v3.Vec{X: max.X - min.X, Y: max.Y - min.Y, Z: max.Z - min.Z}
	s, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, err
	}
	center := v3.Vec{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2, Z: (min.Z + max.Z) / 2}
	return sdf.Transform3D(s, sdf.Translate3d(center)), nil
}

// minCornerBox is a box with its minimum corner at pos. sdf.Box3D centers
// the box at the origin, so shift by half-dimensions.
func minCornerBox(pos v3.Vec, dims [3]float64) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: dims[0], Y: dims[1], Z: dims[2]}, 0)
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3d(v3.Vec{
		X: pos.X + dims[0]/2,
		Y: pos.Y + dims[1]/2,
		Z: pos.Z + dims[2]/2,
	})
	return sdf.Transform3D(s, m), nil
}

// toMesh converts a solid to a triangle mesh using marching cubes.
func toMesh(s sdf.SDF3) *Mesh {
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}
}

func vec3(v geom.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
