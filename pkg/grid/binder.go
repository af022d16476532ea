package grid

import (
	"fmt"
	"log/slog"
	"os"
)

// Options configures a Binder. Columns are required; everything else
// defaults to an inert value (no content, no actions, no selection, discard
// logger, prompting confirmer on stdio).
type Options[T comparable] struct {
	// Content is the initial canonical object collection.
	Content []T

	// Columns declares the column set. At least one column is required.
	Columns []Column[T]

	// Actions declares the contextual menu, in menu order.
	Actions []Action[T]

	// Mode selects the selection strategy.
	Mode Mode

	// Host is the index-set owner for the native selection modes. Required
	// when Mode is ModeSingleNative or ModeMultiNative, ignored otherwise.
	Host Host

	// OnSelectionChange is invoked with the selected objects after every
	// selection change, before the mutating call returns.
	OnSelectionChange func(selected []T)

	// OnRefresh is the renderer's "reload all rows" signal, invoked after
	// every recompute.
	OnRefresh func()

	// Confirmer gates actions flagged NeedsConfirmation. Defaults to a
	// blocking yes/cancel prompt on stdin/stdout.
	Confirmer Confirmer

	// Logger receives debug events. Defaults to a discard logger.
	Logger *slog.Logger
}

// Binder ties the column registry, projection, selection store and action
// resolver together behind the configuration surface an embedding
// application uses. All operations are synchronous; a Binder must be owned
// by a single goroutine.
type Binder[T comparable] struct {
	registry   *Registry[T]
	proj       *Projection[T]
	mode       Mode
	native     *NativeSelection[T]
	manual     *ManualSelection[T]
	actions    []Action[T]
	directives []Directive
	confirm    Confirmer
	onChange   func([]T)
	log        *slog.Logger
}

// New validates the configuration, seeds the projection with the initial
// content and performs the first recompute. Configuration mistakes
// (no columns, duplicate column IDs, native mode without a host) fail fast.
func New[T comparable](opts Options[T]) (*Binder[T], error) {
	if len(opts.Columns) == 0 {
		return nil, ErrNoColumns
	}
	registry, err := NewRegistry(opts.Columns)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	confirm := opts.Confirmer
	if confirm == nil {
		confirm = &PromptConfirmer{In: os.Stdin, Out: os.Stdout}
	}

	b := &Binder[T]{
		registry: registry,
		proj:     NewProjection[T](),
		mode:     opts.Mode,
		actions:  append([]Action[T](nil), opts.Actions...),
		confirm:  confirm,
		onChange: opts.OnSelectionChange,
		log:      log,
	}
	b.proj.SetRefreshFunc(opts.OnRefresh)

	switch opts.Mode {
	case ModeSingleNative, ModeMultiNative:
		if opts.Host == nil {
			return nil, fmt.Errorf("%w: mode %s", ErrNoHost, opts.Mode)
		}
		b.native = NewNativeSelection(b.proj, opts.Host, opts.Mode == ModeSingleNative)
	case ModeCheckbox:
		b.manual = NewManualSelection[T]()
		if b.onChange != nil {
			b.manual.Subscribe(b.onChange)
		}
	}

	b.proj.SetContent(opts.Content)
	return b, nil
}

// SetContent replaces the canonical set and recomputes. In checkbox mode
// the manual selection is left untouched, even if selected objects are no
// longer present; native-mode selection follows host widget semantics and
// does not survive the reload.
func (b *Binder[T]) SetContent(items []T) {
	b.proj.SetContent(items)
	b.log.Debug("content replaced", "rows", len(items))
}

// SetFilter replaces the filter predicate and recomputes.
func (b *Binder[T]) SetFilter(pred func(T) bool) {
	b.proj.SetFilter(pred)
}

// SetDirectives replaces the active sort directives and recomputes.
func (b *Binder[T]) SetDirectives(directives []Directive) {
	b.directives = append([]Directive(nil), directives...)
	b.proj.SetComparator(ResolveComparator(directives, b.registry))
}

// Directives returns the active sort directives in priority order.
func (b *Binder[T]) Directives() []Directive {
	return append([]Directive(nil), b.directives...)
}

// RowCount returns the number of rows in the current row order.
func (b *Binder[T]) RowCount() int { return b.proj.Len() }

// RowAt returns the object at the given row-order position, bounds-checked.
func (b *Binder[T]) RowAt(index int) (T, bool) { return b.proj.RowAt(index) }

// Rows returns a snapshot of the current row order.
func (b *Binder[T]) Rows() []T { return b.proj.Rows() }

// Content returns a snapshot of the canonical set.
func (b *Binder[T]) Content() []T { return b.proj.Content() }

// Projection exposes the underlying projection for collaborators that need
// index translation, such as render adapters.
func (b *Binder[T]) Projection() *Projection[T] { return b.proj }

// Columns returns the registered columns in declaration order.
func (b *Binder[T]) Columns() []Column[T] { return b.registry.Columns() }

// CellAt answers a renderer's cell lookup. It returns false for an
// out-of-range row or an unknown column, never an error.
func (b *Binder[T]) CellAt(row int, columnID string) (Value, bool) {
	obj, ok := b.proj.RowAt(row)
	if !ok {
		return Value{}, false
	}
	col, ok := b.registry.Lookup(columnID)
	if !ok {
		return Value{}, false
	}
	return col.Value(obj), true
}

// Selection returns the active selection store, or nil in mode none.
func (b *Binder[T]) Selection() Selection[T] {
	switch b.mode {
	case ModeSingleNative, ModeMultiNative:
		return b.native
	case ModeCheckbox:
		return b.manual
	default:
		return nil
	}
}

// Manual returns the manual selection store in checkbox mode, nil otherwise.
// It exposes the per-object toggle a checkbox control drives.
func (b *Binder[T]) Manual() *ManualSelection[T] { return b.manual }

// Mode returns the configured selection mode.
func (b *Binder[T]) Mode() Mode { return b.mode }

// Click handles a row activation from the host: native modes select the
// clicked row (extending in multi mode when extend is set), checkbox mode
// toggles the clicked object. Out-of-range rows are ignored.
func (b *Binder[T]) Click(row int, extend bool) {
	obj, ok := b.proj.RowAt(row)
	if !ok {
		return
	}
	switch b.mode {
	case ModeSingleNative:
		b.native.Select([]T{obj}, false)
		b.HostSelectionChanged()
	case ModeMultiNative:
		b.native.Select([]T{obj}, extend)
		b.HostSelectionChanged()
	case ModeCheckbox:
		b.manual.SetSelected(obj, !b.manual.IsSelected(obj))
	}
}

// HostSelectionChanged propagates a host-initiated selection change (arrow
// keys, mouse) to the selection-changed callback. Native mode only; the
// manual store notifies through its own observer list.
func (b *Binder[T]) HostSelectionChanged() {
	if b.native == nil || b.onChange == nil {
		return
	}
	b.onChange(b.native.Selected())
}

// Actions returns the contextual actions in menu order.
func (b *Binder[T]) Actions() []Action[T] {
	return append([]Action[T](nil), b.actions...)
}

// Invoke runs the named action against the targets resolved from the
// clicked row (negative for none) and the current selection. An empty
// target set skips the action entirely. Actions flagged NeedsConfirmation
// run only after the confirmer accepts; because the confirmer may respond
// after Invoke returns, errors from a confirmed Apply are logged rather
// than returned.
func (b *Binder[T]) Invoke(label string, clicked int) error {
	var action Action[T]
	found := false
	for _, a := range b.actions {
		if a.Label == label {
			action = a
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownAction, label)
	}

	targets := ResolveTargets(b.proj, b.Selection(), clicked)
	if len(targets) == 0 {
		b.log.Debug("action skipped, no targets", "action", label)
		return nil
	}

	if !action.NeedsConfirmation {
		return action.Apply(targets)
	}

	prompt := fmt.Sprintf("%s %d row(s)?", label, len(targets))
	b.confirm.Confirm(prompt, func(accepted bool) {
		if !accepted {
			b.log.Debug("action rejected", "action", label)
			return
		}
		if err := action.Apply(targets); err != nil {
			b.log.Error("action failed", "action", label, "error", err)
		}
	})
	return nil
}
