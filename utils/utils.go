package utils

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector(x, y float64) Vector { return Vector{X: x, Y: y} }

func ZeroVector() Vector { return Vector{} }

func SumVectors(vectorA, vectorB Vector) Vector {
	return Vector{X: vectorA.X + vectorB.X, Y: vectorA.Y + vectorB.Y}
}

func SubtractVectors(vectorA, vectorB Vector) Vector {
	return Vector{X: vectorA.X - vectorB.X, Y: vectorA.Y - vectorB.Y}
}

func MultiplyVectorByScalar(vector Vector, scalar float64) Vector {
	return Vector{X: vector.X * scalar, Y: vector.Y * scalar}
}

// Sign returns -1, 0 or 1. Zero maps to zero.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Clamp limits value to [low, high]. When high < low the lower bound wins.
func Clamp(value, low, high float64) float64 {
	if value > high {
		value = high
	}
	if value < low {
		value = low
	}
	return value
}
