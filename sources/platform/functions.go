package platform

// Curry builds a value and applies a configurator to it in one expression.
func Curry[T any](constructor func() T, configurator func(T)) T {
	instance := constructor()
	configurator(instance)
	return instance
}