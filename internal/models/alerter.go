package models

// Alerter delivers operator alerts. Implementations must never block the
// caller for long or propagate failures; alerting is advisory.
type Alerter interface {
	Alert(message string)
}
