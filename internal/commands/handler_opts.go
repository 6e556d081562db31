package commands

type HandlerOpt func(*Handler)

// WithWrapWidth wraps room descriptions at the given width. Zero disables wrapping.
func WithWrapWidth(width int) HandlerOpt {
	return func(h *Handler) {
		h.wrapWidth = width
	}
}
