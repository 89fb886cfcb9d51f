package fan

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/pkg/scenegraph"
)

// Instance is one recorded cube draw.
type Instance struct {
	Part     scenegraph.NodeID
	Instance mgl32.Mat4
}

// DrawList is a Drawer that records instances in draw order.
type DrawList struct {
	Instances []Instance
}

// Reset clears the list, keeping its capacity.
func (l *DrawList) Reset() {
	l.Instances = l.Instances[:0]
}

// DrawCube implements Drawer.
func (l *DrawList) DrawCube(part scenegraph.NodeID, instance mgl32.Mat4) {
	l.Instances = append(l.Instances, Instance{Part: part, Instance: instance})
}

// Count returns the number of instances recorded for part.
func (l *DrawList) Count(part scenegraph.NodeID) int {
	n := 0
	for _, inst := range l.Instances {
		if inst.Part == part {
			n++
		}
	}
	return n
}

// partColors tints each part so the hierarchy is readable.
var partColors = [NumNodes]mgl32.Vec3{
	Stand: {0.35, 0.35, 0.40},
	Base:  {0.55, 0.55, 0.60},
	Frame: {0.20, 0.45, 0.80},
	Ring:  {0.80, 0.80, 0.85},
	Blade: {0.95, 0.60, 0.20},
}

// PartColor returns the display color of a part.
func PartColor(part scenegraph.NodeID) mgl32.Vec3 {
	if part < 0 || part >= NumNodes {
		return mgl32.Vec3{1, 1, 1}
	}
	return partColors[part]
}
