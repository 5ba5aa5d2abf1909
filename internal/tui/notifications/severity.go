package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Notification is a message shown next to the tab bar until dismissed
type Notification struct {
	Severity Severity
	Message  string
}
