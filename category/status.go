package category

// Status is the state reported by an Accumulator after each step.
type Status uint8

const (
	// StatusContinue means the accumulator accepts more values.
	StatusContinue Status = iota
	// StatusComplete means no more values are needed; further Ingest calls are no-ops.
	StatusComplete
	// StatusError means the fit failed; Err reports why.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusComplete:
		return "Complete"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}
