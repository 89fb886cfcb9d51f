package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// ScreenToRay unprojects a window position (origin top-left) through the
// inverse of projection * view.
func ScreenToRay(x, y, width, height float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height

	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if near[3] != 0 {
		near = near.Mul(1 / near[3])
	}
	if far[3] != 0 {
		far = far.Mul(1 / far[3])
	}

	dir := far.Vec3().Sub(near.Vec3())
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near.Vec3(), Direction: dir}
}

// IntersectAABB runs the slab test. t is the entry distance, or the exit
// distance when the origin is inside the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// BoundsOf returns the box around every finite point. ok is false when no
// point is finite.
func BoundsOf(points []mgl32.Vec4) (box AABB, ok bool) {
	for _, p := range points {
		v := p.Vec3()
		if !finite(v) {
			continue
		}
		if !ok {
			box = AABB{Min: v, Max: v}
			ok = true
			continue
		}
		for i := 0; i < 3; i++ {
			box.Min[i] = math32.Min(box.Min[i], v[i])
			box.Max[i] = math32.Max(box.Max[i], v[i])
		}
	}
	return box, ok
}

// Transform returns the world box enclosing all eight transformed corners.
func (b AABB) Transform(m mgl32.Mat4) AABB {
	var out AABB
	for i := 0; i < 8; i++ {
		c := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		w := mgl32.TransformCoordinate(c, m)
		if i == 0 {
			out = AABB{Min: w, Max: w}
			continue
		}
		for a := 0; a < 3; a++ {
			out.Min[a] = math32.Min(out.Min[a], w[a])
			out.Max[a] = math32.Max(out.Max[a], w[a])
		}
	}
	return out
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
