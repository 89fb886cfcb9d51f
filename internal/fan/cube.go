package fan

import "github.com/Faultbox/fanview/pkg/obj"

// cubeOBJ is a unit cube centered at the origin. Each side is a quad split
// into two triangles sharing its first corner.
const cubeOBJ = `o cube
v -0.5 -0.5  0.5
v -0.5  0.5  0.5
v  0.5  0.5  0.5
v  0.5 -0.5  0.5
v -0.5 -0.5 -0.5
v -0.5  0.5 -0.5
v  0.5  0.5 -0.5
v  0.5 -0.5 -0.5
f 2 1 4
f 2 4 3
f 3 4 8
f 3 8 7
f 4 1 5
f 4 5 8
f 7 6 2
f 7 2 3
f 5 6 7
f 5 7 8
f 6 5 1
f 6 1 2
`

// Cube returns the flattened unit cube every fan part is drawn with.
func Cube() obj.FlattenedObject {
	return obj.Flatten(obj.ParseString(cubeOBJ))[0]
}
