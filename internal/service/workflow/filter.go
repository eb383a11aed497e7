package workflow

import "sync"

type Operator string

const (
	OperatorIs      Operator = "is"
	OperatorIsNot   Operator = "is not"
	OperatorIsAnyOf Operator = "is any of"
)

func ValidOperator(op Operator) bool {
	switch op {
	case OperatorIs, OperatorIsNot, OperatorIsAnyOf:
		return true
	}
	return false
}

type dimensionState struct {
	values []string
	op     Operator
	hasOp  bool
}

// Chip is one rendered filter: a dimension, its selected values, and the
// operator shown with them.
type Chip struct {
	Dimension string
	Values    []string
	Operator  Operator
}

// FilterState tracks which values are selected per dimension and the order
// dimensions first became non-empty, which fixes the chip display order.
type FilterState struct {
	mu    sync.Mutex
	dims  map[string]*dimensionState
	order []string
	known []string
}

func NewFilterState() *FilterState {
	return &FilterState{
		dims: make(map[string]*dimensionState),
	}
}

func (f *FilterState) dim(name string) *dimensionState {
	state, ok := f.dims[name]
	if !ok {
		state = &dimensionState{}
		f.dims[name] = state
		f.known = append(f.known, name)
	}
	return state
}

// ToggleValue adds the value to the dimension's selection, or removes it if
// already selected. The dimension joins the selection ledger when it goes
// from empty to non-empty and leaves it when it empties out again.
func (f *FilterState) ToggleValue(dimension, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.dim(dimension)
	wasEmpty := len(state.values) == 0

	for i, v := range state.values {
		if v == value {
			state.values = append(state.values[:i], state.values[i+1:]...)
			if len(state.values) == 0 {
				state.op = ""
				state.hasOp = false
				f.removeFromOrder(dimension)
			}
			return
		}
	}

	state.values = append(state.values, value)
	if wasEmpty {
		f.appendToOrder(dimension)
	}
}

// SetOperator pins the operator for a dimension. Without a pinned operator
// the chip derives one from the selection size.
func (f *FilterState) SetOperator(dimension string, op Operator) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.dim(dimension)
	state.op = op
	state.hasOp = true
}

// ClearDimension drops the dimension's selection, its ledger slot, and any
// pinned operator.
func (f *FilterState) ClearDimension(dimension string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.dims[dimension]
	if !ok {
		return
	}
	state.values = nil
	state.op = ""
	state.hasOp = false
	f.removeFromOrder(dimension)
}

// SelectedValues returns the current selection for a dimension.
func (f *FilterState) SelectedValues(dimension string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.dims[dimension]
	if !ok {
		return nil
	}
	values := make([]string, len(state.values))
	copy(values, state.values)
	return values
}

// ActiveChips returns one chip per non-empty dimension, ledger order first.
// Non-empty dimensions missing from the ledger trail behind in the order
// they were first touched.
func (f *FilterState) ActiveChips() []Chip {
	f.mu.Lock()
	defer f.mu.Unlock()

	inOrder := make(map[string]bool, len(f.order))
	names := make([]string, 0, len(f.order))
	for _, name := range f.order {
		inOrder[name] = true
		names = append(names, name)
	}
	for _, name := range f.known {
		if !inOrder[name] {
			names = append(names, name)
		}
	}

	chips := make([]Chip, 0, len(names))
	for _, name := range names {
		state, ok := f.dims[name]
		if !ok || len(state.values) == 0 {
			continue
		}
		values := make([]string, len(state.values))
		copy(values, state.values)
		chips = append(chips, Chip{
			Dimension: name,
			Values:    values,
			Operator:  effectiveOperator(state),
		})
	}
	return chips
}

func effectiveOperator(state *dimensionState) Operator {
	if state.hasOp {
		return state.op
	}
	if len(state.values) > 1 {
		return OperatorIsAnyOf
	}
	return OperatorIs
}

func (f *FilterState) appendToOrder(dimension string) {
	for _, name := range f.order {
		if name == dimension {
			return
		}
	}
	f.order = append(f.order, dimension)
}

func (f *FilterState) removeFromOrder(dimension string) {
	for i, name := range f.order {
		if name == dimension {
			f.order = append(f.order[:i], f.order[i+1:]...)
			return
		}
	}
}
