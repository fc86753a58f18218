// Package processors provides input processors, which pass input on to the
// input trees they are composed of.
package processors

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/input"
)

// ErrNoOverlay is returned when popping an overlay while there is none.
var ErrNoOverlay = errors.New("attempt to pop from empty overlay stack")

// ModalInputProcessor is an input processor that can take any number of input
// overlays over its base input processor.
// It delegates all processing to its processors.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base input.SimpleInputProcessor

	modalOverlays []input.SimpleInputProcessor
}

var _ input.ModalInputProcessor = &ModalInputProcessor{}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{
		base:          base,
		modalOverlays: make([]input.SimpleInputProcessor, 0),
	}
}

// CapturesInput returns whether the topmost overlay (or, lacking overlays,
// the base processor) captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicableProcessor().CapturesInput()
}

// ProcessInput delegates input processing to the topmost overlay processor
// or, if no overlays are present, the base processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	applied := p.applicableProcessor().ProcessInput(key)
	log.Trace().Str("source", "input").Str("key", key.ToDebugString()).Bool("applied", applied).Int("overlays", len(p.modalOverlays)).Msg("processed key")
	return applied
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the overlay's index, by which all overlays down to and including
// it can be removed.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	p.modalOverlays = append(p.modalOverlays, overlay)
	return uint(len(p.modalOverlays) - 1)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.modalOverlays) < 1 {
		return ErrNoOverlay
	}
	p.modalOverlays = p.modalOverlays[:len(p.modalOverlays)-1]
	return nil
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.modalOverlays)) {
		p.modalOverlays = p.modalOverlays[:index]
	}
}

// Overlaid reports whether any overlay is applied.
func (p *ModalInputProcessor) Overlaid() bool { return len(p.modalOverlays) > 0 }

func (p *ModalInputProcessor) applicableProcessor() input.SimpleInputProcessor {
	if len(p.modalOverlays) > 0 {
		return p.modalOverlays[len(p.modalOverlays)-1]
	}
	return p.base
}

// GetHelp returns the input help map of the applicable processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.applicableProcessor().GetHelp()
}
