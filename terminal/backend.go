package terminal

// Backend abstracts platform-specific terminal operations so the ANSI
// encoder stays platform-neutral.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(width, height int))
}
