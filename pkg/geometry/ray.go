package geometry

import "math"

// Ray represents a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

const intersectEpsilon = 1e-9

// IntersectTriangle tests the ray against a triangle (Möller–Trumbore).
// Returns the distance to the hit and whether it lies in front of the origin.
// Both faces of the triangle count as hits.
func (r Ray) IntersectTriangle(v1, v2, v3 Vector3) (t float64, hit bool) {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < intersectEpsilon {
		return 0, false // Ray parallel to triangle
	}
	invDet := 1.0 / det

	s := r.Origin.Sub(v1)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = edge2.Dot(q) * invDet
	if t <= intersectEpsilon {
		return 0, false // Behind the ray origin
	}
	return t, true
}

// IntersectBox tests the ray against an axis-aligned box using the slab method.
// If the origin is inside the box, the exit distance is returned.
func (r Ray) IntersectBox(box BoundingBox) (t float64, hit bool) {
	if box.IsEmpty() {
		return 0, false
	}

	tmin := -math.MaxFloat64
	tmax := math.MaxFloat64

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
