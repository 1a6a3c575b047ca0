package customerr

// Typed, recoverable error kinds the ledger returns to its callers. The
// presentation layer maps each kind to a user-facing notice; none of them is
// fatal.

// LockedMonthError rejects any mutation of a locked month.
type LockedMonthError struct {
	Month string
}

func (e *LockedMonthError) Error() string {
	return "month " + e.Month + " is locked"
}

// InvalidInputError rejects a missing or malformed required field.
type InvalidInputError struct {
	Err string
}

func (e *InvalidInputError) Error() string {
	return e.Err
}

// IndexError rejects an edit or delete that references a ledger row that
// does not exist.
type IndexError struct {
	Err string
}

func (e *IndexError) Error() string {
	return e.Err
}
