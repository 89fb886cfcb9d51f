package fan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/pkg/scenegraph"
)

func TestRenderDrawCounts(t *testing.T) {
	m := New(DefaultDimensions())
	var list DrawList
	if err := m.Render(&list); err != nil {
		t.Fatalf("render: %v", err)
	}

	counts := map[scenegraph.NodeID]int{
		Stand: 1,
		Base:  1,
		Frame: 1,
		Ring:  24,
		Blade: 3,
	}
	for part, want := range counts {
		if got := list.Count(part); got != want {
			t.Errorf("part %d: expected %d draws, got %d", part, want, got)
		}
	}
	if len(list.Instances) != 30 {
		t.Errorf("expected 30 draws total, got %d", len(list.Instances))
	}
}

func TestRenderOrder(t *testing.T) {
	m := New(DefaultDimensions())
	var list DrawList
	if err := m.Render(&list); err != nil {
		t.Fatalf("render: %v", err)
	}

	var order []scenegraph.NodeID
	for _, inst := range list.Instances {
		if len(order) == 0 || order[len(order)-1] != inst.Part {
			order = append(order, inst.Part)
		}
	}
	want := []scenegraph.NodeID{Stand, Base, Frame, Ring, Blade}
	if len(order) != len(want) {
		t.Fatalf("expected part order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got part %d, want %d", i, order[i], want[i])
		}
	}
}

func TestBladeInheritsFrameNotRing(t *testing.T) {
	dims := DefaultDimensions()
	m := New(dims)
	m.Graph().SetTransform(Ring, mgl32.Translate3D(100, 0, 0))

	var list DrawList
	if err := m.Render(&list); err != nil {
		t.Fatalf("render: %v", err)
	}

	frame := m.Graph().Node(Frame).Transform
	base := m.Graph().Node(Base).Transform
	root := mgl32.Translate3D(m.Position[0], m.Position[1], 0)
	expectFirst := root.Mul4(base).Mul4(frame).
		Mul4(mgl32.Translate3D(dims.BladeLength/2, 0, 0)).
		Mul4(mgl32.Scale3D(dims.BladeLength, dims.BladeWidth, dims.BladeWidth))

	for _, inst := range list.Instances {
		if inst.Part != Blade {
			continue
		}
		if !inst.Instance.ApproxEqualThreshold(expectFirst, 1e-4) {
			t.Errorf("first blade:\n got %v\nwant %v", inst.Instance, expectFirst)
		}
		break
	}
}

func TestSetFrameAngleRebuildsOnlyFrame(t *testing.T) {
	m := New(DefaultDimensions())
	before := make([]scenegraph.Node, NumNodes)
	for id := Stand; id < NumNodes; id++ {
		before[id] = m.Graph().Node(id)
	}

	m.SetFrameAngle(90)

	for id := Stand; id < NumNodes; id++ {
		after := m.Graph().Node(id)
		if id == Frame {
			if after.Transform == before[id].Transform {
				t.Error("frame transform did not change")
			}
			continue
		}
		if after.Transform != before[id].Transform {
			t.Errorf("node %d transform changed", id)
		}
		if after.Child != before[id].Child || after.Sibling != before[id].Sibling {
			t.Errorf("node %d links changed", id)
		}
	}

	want := mgl32.Translate3D(0, 8, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	if !m.Graph().Node(Frame).Transform.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("frame transform: got %v, want %v", m.Graph().Node(Frame).Transform, want)
	}
	if m.FrameAngle() != 90 {
		t.Errorf("expected frame angle 90, got %f", m.FrameAngle())
	}
}

func TestSetBladeAngle(t *testing.T) {
	m := New(DefaultDimensions())
	m.SetBladeAngle(45)

	want := mgl32.HomogRotate3DZ(mgl32.DegToRad(45))
	if !m.Graph().Node(Blade).Transform.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("blade transform: got %v, want %v", m.Graph().Node(Blade).Transform, want)
	}
	if m.BladeAngle() != 45 {
		t.Errorf("expected blade angle 45, got %f", m.BladeAngle())
	}
}

func TestTopology(t *testing.T) {
	g := New(DefaultDimensions()).Graph()
	tests := []struct {
		id             scenegraph.NodeID
		child, sibling scenegraph.NodeID
	}{
		{Stand, Base, scenegraph.None},
		{Base, Frame, scenegraph.None},
		{Frame, Ring, scenegraph.None},
		{Ring, scenegraph.None, Blade},
		{Blade, scenegraph.None, scenegraph.None},
	}
	for _, tt := range tests {
		n := g.Node(tt.id)
		if n.Child != tt.child || n.Sibling != tt.sibling {
			t.Errorf("node %d: child=%d sibling=%d, want child=%d sibling=%d",
				tt.id, n.Child, n.Sibling, tt.child, tt.sibling)
		}
	}
}

func TestDrag(t *testing.T) {
	m := New(DefaultDimensions())
	m.Drag(50, 100)

	want := mgl32.Vec2{1, -10}
	if !m.Position.ApproxEqual(want) {
		t.Errorf("position: got %v, want %v", m.Position, want)
	}
}

func TestCube(t *testing.T) {
	c := Cube()
	if c.VertexCount() != 36 {
		t.Fatalf("expected 36 vertices, got %d", c.VertexCount())
	}
	for tri := 0; tri < c.TriangleCount(); tri++ {
		center := c.Points[tri*3].Vec3().
			Add(c.Points[tri*3+1].Vec3()).
			Add(c.Points[tri*3+2].Vec3()).
			Mul(1.0 / 3)
		if c.Normals[tri*3].Dot(center) <= 0 {
			t.Errorf("triangle %d: normal %v points inward", tri, c.Normals[tri*3])
		}
	}
}

func TestPartColor(t *testing.T) {
	if PartColor(Blade) == PartColor(Ring) {
		t.Error("expected distinct blade and ring colors")
	}
	if PartColor(42) != (mgl32.Vec3{1, 1, 1}) {
		t.Error("expected white for unknown part")
	}
}
