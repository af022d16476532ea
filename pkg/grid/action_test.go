package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordBinder(t *testing.T, opts Options[string]) *Binder[string] {
	t.Helper()
	if opts.Columns == nil {
		opts.Columns = []Column[string]{
			{ID: "word", Name: "Word", Value: func(s string) Value { return NewText(s) }},
		}
	}
	if opts.Content == nil {
		opts.Content = []string{"Cod", "Shark", "Hammer"}
	}
	b, err := New(opts)
	require.NoError(t, err)
	return b
}

func TestResolveTargets_ClickOverridesUnrelatedSelection(t *testing.T) {
	b := wordBinder(t, Options[string]{Mode: ModeCheckbox})
	b.Manual().Select([]string{"Cod"}, false)

	// Row 1 is "Shark", which is not part of the selection: the action
	// targets only the clicked object.
	targets := ResolveTargets(b.Projection(), b.Selection(), 1)
	assert.Equal(t, []string{"Shark"}, targets)
}

func TestResolveTargets_ClickInsideSelectionTargetsAll(t *testing.T) {
	b := wordBinder(t, Options[string]{Mode: ModeCheckbox})
	b.Manual().Select([]string{"Cod", "Shark"}, false)

	// Row 0 is "Cod", already selected: the whole selection is targeted.
	targets := ResolveTargets(b.Projection(), b.Selection(), 0)
	assert.Equal(t, []string{"Cod", "Shark"}, targets)
}

func TestResolveTargets_NoClickUsesSelection(t *testing.T) {
	b := wordBinder(t, Options[string]{Mode: ModeCheckbox})
	b.Manual().Select([]string{"Hammer"}, false)

	targets := ResolveTargets(b.Projection(), b.Selection(), -1)
	assert.Equal(t, []string{"Hammer"}, targets)
}

func TestResolveTargets_NilSelection(t *testing.T) {
	b := wordBinder(t, Options[string]{Mode: ModeNone})

	assert.Equal(t, []string{"Shark"}, ResolveTargets(b.Projection(), b.Selection(), 1),
		"a click still targets the clicked object without a selection store")
	assert.Empty(t, ResolveTargets(b.Projection(), b.Selection(), -1))
}

func TestInvoke_EmptyTargetsSkipsAction(t *testing.T) {
	var applied bool
	b := wordBinder(t, Options[string]{
		Mode: ModeCheckbox,
		Actions: []Action[string]{{
			Label: "Remove",
			Apply: func([]string) error { applied = true; return nil },
		}},
	})

	// Nothing selected and no click: the action must not run at all.
	require.NoError(t, b.Invoke("Remove", -1))
	assert.False(t, applied)
}

func TestInvoke_UnknownAction(t *testing.T) {
	b := wordBinder(t, Options[string]{})
	err := b.Invoke("Vanish", -1)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestInvoke_ConfirmationRejectLeavesContentUntouched(t *testing.T) {
	var applied [][]string
	reject := ConfirmFunc(func(_ string, respond func(bool)) { respond(false) })

	b := wordBinder(t, Options[string]{
		Mode:      ModeCheckbox,
		Confirmer: reject,
		Actions: []Action[string]{{
			Label:             "Remove",
			NeedsConfirmation: true,
			Apply:             func(targets []string) error { applied = append(applied, targets); return nil },
		}},
	})
	b.Manual().Select([]string{"Cod"}, false)

	require.NoError(t, b.Invoke("Remove", -1))
	assert.Empty(t, applied, "rejected confirmation must not apply")
	assert.Equal(t, []string{"Cod", "Shark", "Hammer"}, b.Content(), "canonical set unchanged")
}

func TestInvoke_ConfirmationAcceptApplies(t *testing.T) {
	var applied [][]string
	var prompts []string
	accept := ConfirmFunc(func(prompt string, respond func(bool)) {
		prompts = append(prompts, prompt)
		respond(true)
	})

	b := wordBinder(t, Options[string]{
		Mode:      ModeCheckbox,
		Confirmer: accept,
		Actions: []Action[string]{{
			Label:             "Remove",
			NeedsConfirmation: true,
			Apply:             func(targets []string) error { applied = append(applied, targets); return nil },
		}},
	})
	b.Manual().Select([]string{"Cod", "Shark"}, false)

	require.NoError(t, b.Invoke("Remove", -1))
	require.Len(t, applied, 1)
	assert.Equal(t, []string{"Cod", "Shark"}, applied[0])
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Remove")
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"default reject", "\n", false},
		{"eof rejects", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := &PromptConfirmer{In: strings.NewReader(tt.input), Out: &out}

			var got, responded bool
			c.Confirm("Remove 2 row(s)?", func(accepted bool) {
				got = accepted
				responded = true
			})

			assert.True(t, responded, "respond must be invoked exactly once")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Remove 2 row(s)?")
		})
	}
}
