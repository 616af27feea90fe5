package cast

// Func converts a raw configuration value into the caller's desired type.
type Func func(value any) (any, error)

// Identity returns value unchanged. It is the cast used when none is requested.
func Identity(value any) (any, error) {
	return value, nil
}
