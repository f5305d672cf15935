package dlx

import "errors"

// Construction-time errors, returned from Builder methods. The arena is left
// at its last valid state whenever one of these is returned.
var (
	// ErrDuplicateName indicates an item name was declared more than once.
	ErrDuplicateName = errors.New("dlx: item name already declared")
	// ErrUnknownItem indicates an option referenced an item index that was
	// never declared.
	ErrUnknownItem = errors.New("dlx: item index out of declared range")
	// ErrSecondaryAfterOptions indicates DefineSecondaryItem (or
	// DefinePrimaryItem) was called after PrepareOptions.
	ErrSecondaryAfterOptions = errors.New("dlx: items must be declared before PrepareOptions")
	// ErrPrimaryAfterSecondary indicates a primary item was declared after
	// a secondary item.
	ErrPrimaryAfterSecondary = errors.New("dlx: primary items must all be declared before secondary items")
	// ErrEmptyOption indicates EndOption was called with no items added.
	ErrEmptyOption = errors.New("dlx: option has no items")
	// ErrNotReady indicates an option-building call was made before
	// PrepareOptions.
	ErrNotReady = errors.New("dlx: PrepareOptions has not been called")
	// ErrOptionInProgress indicates BeginOption was called while another
	// option was still open.
	ErrOptionInProgress = errors.New("dlx: previous option has not been closed with EndOption")
	// ErrNoOptionOpen indicates AddItem/AddItemWithColor/EndOption was
	// called with no option open.
	ErrNoOptionOpen = errors.New("dlx: no option is open, call BeginOption first")
	// ErrInvalidMultiplicity indicates a multiplicity bound with v < u or
	// u < 0 was requested.
	ErrInvalidMultiplicity = errors.New("dlx: invalid multiplicity bounds")
	// ErrNoItems indicates PrepareOptions was called with zero items
	// declared.
	ErrNoItems = errors.New("dlx: no items have been declared")
)

// ErrNoOptionsForItem is the structural error detected in state C1: some
// item never occurs in any option, so the problem is trivially
// unsatisfiable. It is not returned as an error from ComputeNextResult;
// instead ComputeNextResult returns (false, nil) for "no solution", and the
// offending item name is reported through the configured Logger.
var ErrNoOptionsForItem = errors.New("dlx: item has no options covering it")
