package interfaces

import "rockstar_services/internal/domain/entities"

// INotifier receives (severity, title, message) triples for validation
// errors, submission success and submission failure. Fire-and-forget: no
// acknowledgment is tracked and delivery failures are the notifier's problem.
type INotifier interface {
	Notify(severity entities.Severity, title, message string)
}
