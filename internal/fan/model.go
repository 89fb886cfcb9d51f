// Package fan builds the hierarchical desk-fan model out of unit cubes.
//
// The model is a five node scene graph:
//
//	stand -> base -> frame -> ring
//	                       \-> blade (sibling of ring)
//
// Frame and blade are joints: their rotation angles can be changed at runtime,
// which rebuilds only that node's local transform.
package fan

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/pkg/scenegraph"
)

// Node IDs in the fan's node table.
const (
	Stand scenegraph.NodeID = iota
	Base
	Frame
	Ring
	Blade
	NumNodes
)

// dragScale converts mouse pixels to world units when moving the fan.
const dragScale = 50.0

// Dimensions holds the sizes of every part.
type Dimensions struct {
	StandHeight, StandWidth  float32
	BaseHeight, BaseWidth    float32
	FrameRadius, FrameDepth  float32
	RingOuter, RingThickness float32
	RingSegments             int
	BladeLength, BladeWidth  float32
	BladeCount               int
}

// DefaultDimensions returns the stock fan proportions.
func DefaultDimensions() Dimensions {
	return Dimensions{
		StandHeight:   0.3,
		StandWidth:    3.0,
		BaseHeight:    8.0,
		BaseWidth:     0.5,
		FrameRadius:   1.5,
		FrameDepth:    0.3,
		RingOuter:     3.0,
		RingThickness: 0.2,
		RingSegments:  24,
		BladeLength:   2.5,
		BladeWidth:    0.2,
		BladeCount:    3,
	}
}

// Drawer receives one cube instance per draw.
type Drawer interface {
	DrawCube(part scenegraph.NodeID, instance mgl32.Mat4)
}

// Model is the fan scene graph plus its joint angles and screen position.
type Model struct {
	graph *scenegraph.Graph
	dims  Dimensions

	// theta holds joint angles in degrees, indexed by node ID.
	theta [NumNodes]float32

	// Position is the fan's offset in the XY plane.
	Position mgl32.Vec2

	drawer Drawer
}

// New creates a fan and builds every node.
func New(dims Dimensions) *Model {
	m := &Model{
		graph:    scenegraph.New(int(NumNodes)),
		dims:     dims,
		Position: mgl32.Vec2{0, -8},
	}
	for id := Stand; id < NumNodes; id++ {
		m.initNode(id)
	}
	return m
}

// Graph exposes the node table.
func (m *Model) Graph() *scenegraph.Graph {
	return m.graph
}

// FrameAngle returns the frame's yaw in degrees.
func (m *Model) FrameAngle() float32 { return m.theta[Frame] }

// BladeAngle returns the blade spin in degrees.
func (m *Model) BladeAngle() float32 { return m.theta[Blade] }

// SetFrameAngle sets the frame's yaw and rebuilds that node only.
func (m *Model) SetFrameAngle(degrees float32) {
	m.theta[Frame] = degrees
	m.initNode(Frame)
}

// SetBladeAngle sets the blade spin and rebuilds that node only.
func (m *Model) SetBladeAngle(degrees float32) {
	m.theta[Blade] = degrees
	m.initNode(Blade)
}

// Drag moves the fan by a mouse delta in pixels. Screen Y grows downward.
func (m *Model) Drag(dx, dy float32) {
	m.Position[0] += dx / dragScale
	m.Position[1] -= dy / dragScale
}

// Render traverses the graph from the stand, emitting cube instances to d.
func (m *Model) Render(d Drawer) error {
	m.drawer = d
	defer func() { m.drawer = nil }()

	base := mgl32.Translate3D(m.Position[0], m.Position[1], 0)
	return m.graph.Traverse(Stand, base)
}

// initNode computes the local transform and links of a single node.
func (m *Model) initNode(id scenegraph.NodeID) {
	var n scenegraph.Node
	switch id {
	case Stand:
		n = scenegraph.NewNode(mgl32.Ident4(), m.renderStand, scenegraph.None, Base)

	case Base:
		n = scenegraph.NewNode(mgl32.Translate3D(0, m.dims.StandHeight, 0), m.renderBase, scenegraph.None, Frame)

	case Frame:
		t := mgl32.Translate3D(0, m.dims.BaseHeight, 0).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(m.theta[Frame])))
		n = scenegraph.NewNode(t, m.renderFrame, scenegraph.None, Ring)

	case Ring:
		n = scenegraph.NewNode(mgl32.Ident4(), m.renderRing, Blade, scenegraph.None)

	case Blade:
		t := mgl32.HomogRotate3DZ(mgl32.DegToRad(m.theta[Blade]))
		n = scenegraph.NewNode(t, m.renderBlades, scenegraph.None, scenegraph.None)

	default:
		return
	}
	m.graph.Set(id, n)
}

func (m *Model) draw(id scenegraph.NodeID, instance mgl32.Mat4) {
	if m.drawer != nil {
		m.drawer.DrawCube(id, instance)
	}
}

func (m *Model) renderStand(id scenegraph.NodeID, mv mgl32.Mat4) {
	d := m.dims
	inst := mv.Mul4(mgl32.Translate3D(0, 0.5*d.StandHeight, 0)).
		Mul4(mgl32.Scale3D(d.StandWidth, d.StandHeight, d.StandWidth))
	m.draw(id, inst)
}

func (m *Model) renderBase(id scenegraph.NodeID, mv mgl32.Mat4) {
	d := m.dims
	inst := mv.Mul4(mgl32.Translate3D(0, 0.5*d.BaseHeight, 0)).
		Mul4(mgl32.Scale3D(d.BaseWidth, d.BaseHeight, d.BaseWidth))
	m.draw(id, inst)
}

func (m *Model) renderFrame(id scenegraph.NodeID, mv mgl32.Mat4) {
	d := m.dims
	m.draw(id, mv.Mul4(mgl32.Scale3D(d.FrameRadius, d.FrameRadius, d.FrameDepth)))
}

func (m *Model) renderRing(id scenegraph.NodeID, mv mgl32.Mat4) {
	d := m.dims
	for i := 0; i < d.RingSegments; i++ {
		angle := float32(i) / float32(d.RingSegments) * 360
		inst := mv.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle))).
			Mul4(mgl32.Translate3D(d.RingOuter, 0, 0)).
			Mul4(mgl32.Scale3D(d.RingThickness, d.RingThickness, d.RingThickness))
		m.draw(id, inst)
	}
}

func (m *Model) renderBlades(id scenegraph.NodeID, mv mgl32.Mat4) {
	d := m.dims
	if d.BladeCount <= 0 {
		return
	}
	spacing := 360 / float32(d.BladeCount)
	for i := 0; i < d.BladeCount; i++ {
		inst := mv.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(i) * spacing))).
			Mul4(mgl32.Translate3D(d.BladeLength/2, 0, 0)).
			Mul4(mgl32.Scale3D(d.BladeLength, d.BladeWidth, d.BladeWidth))
		m.draw(id, inst)
	}
}
