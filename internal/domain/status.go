package domain

import "strings"

type ProcessStatus string

const (
	StatusPendingCompleted ProcessStatus = "PendingCompleted"
	StatusCompleted        ProcessStatus = "Completed"
	StatusAborted          ProcessStatus = "Aborted"
	StatusDisputed         ProcessStatus = "Disputed"
)

// IsTerminal reports whether no further transitions are permitted.
func (s ProcessStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusAborted, StatusDisputed:
		return true
	}
	return false
}

func (s ProcessStatus) String() string {
	return string(s)
}

// SubStatus is the fine-grained in-flight state of a process. Empty means none.
type SubStatus string

const (
	SubStatusNone            SubStatus = ""
	SubStatusStarted         SubStatus = "Started"
	SubStatusAwaitingRatings SubStatus = "AwaitingRatings"
)

// Charging request statuses mirrored from the process.
const (
	RequestStatusPending          = "pending"
	RequestStatusAccepted         = "accepted"
	RequestStatusRejected         = "rejected"
	RequestStatusConfirmed        = "confirmed"
	RequestStatusPendingCompleted = "PendingCompleted"
	RequestStatusStarted          = "Started"
	RequestStatusCompleted        = "Completed"
	RequestStatusAborted          = "Aborted"
	RequestStatusDisputed         = "Disputed"
)

// Command is a transition requested by one of the parties.
type Command int

const (
	CommandNone Command = iota
	CommandComplete
	CommandStart
	CommandAbort
	CommandEndByReport
)

func (c Command) String() string {
	switch c {
	case CommandComplete:
		return "completed"
	case CommandStart:
		return "started"
	case CommandAbort:
		return "aborted"
	case CommandEndByReport:
		return "ended-by-report"
	}
	return "none"
}

// ParseCommand maps external status/decision strings onto a Command,
// case-insensitively and ignoring separators. Unrecognized input yields
// CommandNone.
func ParseCommand(s string) Command {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "completed", "complete":
		return CommandComplete
	case "started", "start":
		return CommandStart
	case "aborted", "abort":
		return CommandAbort
	case "endedbyreport":
		return CommandEndByReport
	}
	return CommandNone
}
