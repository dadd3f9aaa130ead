package game

// DirectionHandler receives direction input from a host input source
type DirectionHandler interface {
	OnDirection(d Direction)
}

var _ DirectionHandler = (*Controller)(nil)

// DirectionFunc adapts a function to DirectionHandler
type DirectionFunc func(d Direction)

func (f DirectionFunc) OnDirection(d Direction) {
	f(d)
}
