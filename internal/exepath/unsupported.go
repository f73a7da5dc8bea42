package exepath

// Unsupported is used where the OS has no reliable mechanism. It never guesses.
type Unsupported struct{}

// Resolve implements Strategy.
func (Unsupported) Resolve() (string, bool) {
	return "", false
}
