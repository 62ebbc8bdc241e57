package payslip

// Status tracks a payslip through its lifecycle. Previews are free to
// recompute; generation freezes the numbers and commits the advance
// deduction; settlement records the payout.
type Status string

const (
	StatusPreview   Status = "preview"
	StatusGenerated Status = "generated"
	StatusSettled   Status = "settled"
)

var transitions = map[Status][]Status{
	StatusPreview:   {StatusPreview, StatusGenerated},
	StatusGenerated: {StatusSettled},
	StatusSettled:   {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// preview -> preview covers recomputation of an existing preview row.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
