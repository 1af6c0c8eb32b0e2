package model

// RequestStatus represents the lifecycle of a single controller request
type RequestStatus string

const (
	// RequestStatusIdle means no request is in flight
	RequestStatusIdle RequestStatus = "Idle"

	// RequestStatusPending means the request was sent and the response is awaited
	RequestStatusPending RequestStatus = "Pending"

	// RequestStatusSucceeded means the response was presented
	RequestStatusSucceeded RequestStatus = "Succeeded"

	// RequestStatusFailed means the request ended with a reported error
	RequestStatusFailed RequestStatus = "Failed"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsActive returns true while a response is awaited
func (rs RequestStatus) IsActive() bool {
	return rs == RequestStatusPending
}

// IsFinished returns true for terminal states (succeeded or failed)
func (rs RequestStatus) IsFinished() bool {
	return rs == RequestStatusSucceeded || rs == RequestStatusFailed
}

// ViewState is the currently visible section of the main window
type ViewState int

const (
	ViewHome ViewState = iota
	ViewHistory
)

// String returns a stable name for logging
func (v ViewState) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Views lists every view in display order
func Views() []ViewState {
	return []ViewState{ViewHome, ViewHistory}
}

// Severity classifies a notification
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)
