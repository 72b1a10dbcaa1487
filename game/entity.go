package game

import "github.com/lguibr/pongclassic/utils"

// Entity is anything drawn on screen: a paddle or the ball. Its size comes
// from its visual asset and never changes after creation.
type Entity struct {
	width    float64
	height   float64
	Position utils.Vector `json:"position"`
	Velocity utils.Vector `json:"velocity"`
}

func NewEntity(width, height float64, position utils.Vector) Entity {
	return NewEntityWithVelocity(width, height, position, utils.ZeroVector())
}

func NewEntityWithVelocity(width, height float64, position, velocity utils.Vector) Entity {
	return Entity{width: width, height: height, Position: position, Velocity: velocity}
}

func (e Entity) Width() float64  { return e.width }
func (e Entity) Height() float64 { return e.height }

func (e Entity) Left() float64   { return e.Position.X }
func (e Entity) Right() float64  { return e.Position.X + e.width }
func (e Entity) Top() float64    { return e.Position.Y }
func (e Entity) Bottom() float64 { return e.Position.Y + e.height }

func (e Entity) Bounds() utils.Rectangle {
	return utils.NewRectangle(e.Position.X, e.Position.Y, e.width, e.height)
}

// Center is the geometric centre of the entity.
func (e Entity) Center() utils.Vector {
	return e.offsetByHalf(utils.NewVector(e.width, e.height))
}

// WidthCenter offsets both axes by half the width. For square entities it is
// the same point as Center.
func (e Entity) WidthCenter() utils.Vector {
	return e.offsetByHalf(utils.NewVector(e.width, e.width))
}

func (e Entity) offsetByHalf(size utils.Vector) utils.Vector {
	return utils.SumVectors(e.Position, utils.MultiplyVectorByScalar(size, 0.5))
}

func (e *Entity) Move() {
	e.Position = utils.SumVectors(e.Position, e.Velocity)
}
