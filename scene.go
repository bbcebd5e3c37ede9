package sdlimdraw

// Scene contains a set of operations for drawing.
type Scene struct {
	DrawOperations []DrawOperation
}

// Add appends operations to the scene.
func (scene *Scene) Add(drawOperations ...DrawOperation) *Scene {
	scene.DrawOperations = append(scene.DrawOperations, drawOperations...)
	return scene
}

// Draw draws the operations in order and stops at the first error.
func (scene *Scene) Draw(canvas Canvas) error {
	for _, drawOperation := range scene.DrawOperations {
		err := drawOperation.Draw(canvas)
		if err != nil {
			return err
		}
	}
	return nil
}
