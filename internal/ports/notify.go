package ports

// Notifier delivers completion side effects. Both calls are best-effort:
// the engine logs failures and never retries.
type Notifier interface {
	// Notify displays a desktop notification.
	Notify(title, body string) error

	// PlayTone plays a short completion tone.
	PlayTone() error
}
