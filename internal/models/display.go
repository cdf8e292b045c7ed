package models

// ActionKind is the effect a host should attach to a record action.
type ActionKind string

const (
	ActionCopy ActionKind = "copy"
	ActionOpen ActionKind = "open"
)

// Action is one host-executed effect offered on a display record.
type Action struct {
	Kind    ActionKind
	Label   string
	Payload string
}

// DisplayRecord is one flattened, user-facing result line. IDs are unique
// within a response and stable across re-renders of the same query.
type DisplayRecord struct {
	ID        string
	Headline  string
	Detail    string
	InputHint string
	Actions   []Action
}

// ResponseMode tells the host which of the dispatcher outcomes it is rendering.
type ResponseMode int

const (
	ModeUsage ResponseMode = iota
	ModeInvalidPair
	ModeResults
	ModeNoResults
	ModeError
)

func (m ResponseMode) String() string {
	switch m {
	case ModeUsage:
		return "usage"
	case ModeInvalidPair:
		return "invalid_pair"
	case ModeResults:
		return "results"
	case ModeNoResults:
		return "no_results"
	case ModeError:
		return "error"
	}
	return "unknown"
}

// Response is one complete answer to one query.
type Response struct {
	Mode    ResponseMode
	Records []DisplayRecord
}
