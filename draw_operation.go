package sdlimdraw

// DrawOperation is interface to encapsulate the drawing operation
type DrawOperation interface {
	Draw(canvas Canvas) error
}
