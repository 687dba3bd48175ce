package column

// State is the lifecycle state of a column.
type State uint32

const (
	StateUnfit   State = iota // no encoder yet
	StateFitting              // a fit or load is in progress
	StateFitted               // the encoder is ready
)

func (s State) String() string {
	switch s {
	case StateUnfit:
		return "Unfit"
	case StateFitting:
		return "Fitting"
	case StateFitted:
		return "Fitted"
	default:
		return "Unknown"
	}
}
