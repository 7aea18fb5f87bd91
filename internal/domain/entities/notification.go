package entities

// Severity classifies a notification handed to the notification collaborator.

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)
