package alloc

import (
	"math"

	"memreach/process"
)

// Vector2 is a pair of packed float32 fields as game engines commonly lay
// them out.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vector2) Normalized() Vector2 {
	l := v.Len()
	return Vector2{v.X / l, v.Y / l}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Vector3 is a triple of packed float32 fields.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

func (v Vector3) Normalized() Vector3 {
	l := v.Len()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// ReadVector2 reads two consecutive float32 values starting at addr.
func (a Allocation) ReadVector2(addr process.Address) (Vector2, error) {
	x, err := a.ReadFLOAT32(addr)
	if err != nil {
		return Vector2{}, err
	}
	y, err := a.ReadFLOAT32(addr.Add(4))
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{x, y}, nil
}

// ReadVector3 reads three consecutive float32 values starting at addr.
func (a Allocation) ReadVector3(addr process.Address) (Vector3, error) {
	x, err := a.ReadFLOAT32(addr)
	if err != nil {
		return Vector3{}, err
	}
	y, err := a.ReadFLOAT32(addr.Add(4))
	if err != nil {
		return Vector3{}, err
	}
	z, err := a.ReadFLOAT32(addr.Add(8))
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{x, y, z}, nil
}
