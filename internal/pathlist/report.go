package pathlist

// Outcome classifies the result of processing one path argument.
type Outcome int

const (
	// OutcomeAdded means the path was appended to the in-memory list.
	OutcomeAdded Outcome = iota

	// OutcomeSkipped means the path was already present; nothing changed.
	OutcomeSkipped

	// OutcomePersisted means a statement block was appended to the profile.
	OutcomePersisted

	// OutcomeAlreadyPersisted means the profile already had the statement.
	OutcomeAlreadyPersisted

	// OutcomeRemoved means at least one matching entry was removed.
	OutcomeRemoved

	// OutcomeNotFound means no matching entry existed; nothing changed.
	OutcomeNotFound

	// OutcomePersistedRemoved means the persisted statement was deleted.
	OutcomePersistedRemoved

	// OutcomeError means this path argument failed; later arguments are
	// still processed.
	OutcomeError
)

// Tag returns the bracketed marker printed at the start of a status line.
// Driving scripts match on these.
func (o Outcome) Tag() string {
	switch o {
	case OutcomeAdded:
		return "[ADD]"
	case OutcomeSkipped:
		return "[SKIP]"
	case OutcomePersisted:
		return "[SAVE]"
	case OutcomeAlreadyPersisted:
		return "[HAVE]"
	case OutcomeRemoved:
		return "[DEL]"
	case OutcomeNotFound:
		return "[NONE]"
	case OutcomePersistedRemoved:
		return "[UNDO]"
	case OutcomeError:
		return "[ERROR]"
	default:
		return "[?]"
	}
}

// Report is one status line for one processed path.
type Report struct {
	Outcome Outcome

	// Path is the normalized form when normalization succeeded, the raw
	// argument otherwise.
	Path string

	// Err is set only for OutcomeError.
	Err error
}

// Failed reports whether this report represents an argument-level error.
// Skipped and NotFound are not failures.
func (r Report) Failed() bool {
	return r.Outcome == OutcomeError
}

// AnyFailed reports whether any report in the batch failed.
func AnyFailed(reports []Report) bool {
	for _, r := range reports {
		if r.Failed() {
			return true
		}
	}
	return false
}
