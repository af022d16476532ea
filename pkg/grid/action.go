package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Action is one entry in the contextual menu, operating on a batch of
// objects resolved from the click and selection state at invocation time.
type Action[T comparable] struct {
	// Label identifies the action in the menu and in Invoke calls.
	Label string

	// NeedsConfirmation gates Apply behind the binder's Confirmer; a
	// rejected confirmation performs no mutation.
	NeedsConfirmation bool

	// Apply performs the action over the resolved targets.
	Apply func(targets []T) error
}

// ResolveTargets computes the object set a contextual action operates on.
// A click on a row that is not part of the current selection targets only
// the clicked object: a right-click acts on what was clicked unless the
// click landed inside the multi-selection. Otherwise the full selection is
// targeted. Pass a negative clicked index for "no click". A nil selection
// (mode none) behaves as an empty one.
func ResolveTargets[T comparable](proj *Projection[T], sel Selection[T], clicked int) []T {
	if obj, ok := proj.RowAt(clicked); ok {
		if sel == nil || !sel.IsSelected(obj) {
			return []T{obj}
		}
	}
	if sel == nil {
		return nil
	}
	return sel.Selected()
}

// Confirmer gates destructive actions behind a confirmation step. Confirm
// must invoke respond exactly once, either synchronously or after user
// interaction completes; callers must not assume the response arrives
// before Confirm returns.
type Confirmer interface {
	Confirm(prompt string, respond func(accepted bool))
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string, respond func(accepted bool))

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string, respond func(accepted bool)) { f(prompt, respond) }

// PromptConfirmer is the default Confirmer: a blocking yes/cancel prompt
// over a reader/writer pair. Anything other than "y" or "yes" rejects.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (c *PromptConfirmer) Confirm(prompt string, respond func(accepted bool)) {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		respond(false)
		return
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	respond(answer == "y" || answer == "yes")
}
