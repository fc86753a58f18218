package input

// SimpleInputProcessor can process the input it is configured for and provide
// help information for that configuration. It can also "capture" input to
// ensure its precedence over other processors, e.g. when it has partial input.
type SimpleInputProcessor interface {

	// CapturesInput returns whether this processor "captures" input, i.E. whether
	// it ought to take priority in processing over other processors.
	CapturesInput() bool

	// ProcessInput attempts to process the provided input.
	// Returns whether the provided input "applied", i.E. the processor performed
	// an action based on the input.
	ProcessInput(key Key) bool

	// GetHelp returns the input help map for this processor.
	GetHelp() Help
}

// ModalInputProcessor is an input processor that (additionally to
// SimpleInputProcessor) can be temporarily overlaid with any number of
// additional input processors, which can be removed one-by-one of the top or
// by their indices.
//
// An open rotator menu, for example, overlays the rotator's mappings with the
// menu's.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay applies an overlay to this processor.
	// It returns the overlay's index, by which all overlays down to and
	// including it can be removed.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay from this processor.
	PopModalOverlay() error

	// PopModalOverlays pops all overlays down to and including the one at the
	// specified index.
	PopModalOverlays(index uint)

	// Overlaid reports whether any overlay is applied.
	Overlaid() bool
}

// CapturingOverlay is a wrapper over a SimpleInputProcessor that always claims
// to capture input, which is desirable for modal overlays such as menus.
type CapturingOverlay struct {
	Processor SimpleInputProcessor
}

// CapturesInput always returns true.
func (o *CapturingOverlay) CapturesInput() bool { return true }

// ProcessInput defers to the wrapped processor.
func (o *CapturingOverlay) ProcessInput(k Key) bool { return o.Processor.ProcessInput(k) }

// GetHelp returns the wrapped processor's help.
func (o *CapturingOverlay) GetHelp() Help { return o.Processor.GetHelp() }

// CapturingOverlayWrap returns a wrapper over the given SimpleInputProcessor
// that always captures all input.
func CapturingOverlayWrap(s SimpleInputProcessor) *CapturingOverlay {
	return &CapturingOverlay{Processor: s}
}
