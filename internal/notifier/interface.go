package notifier

import "errors"

// Notifier defines the interface for sending notifications
type Notifier interface {
	Notify(title string, message string, url string) error
}

// Multi sends every notification through all of its notifiers.
// A failing notifier does not stop the others.
type Multi []Notifier

// Notify implements Notifier
func (m Multi) Notify(title, message, url string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(title, message, url); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
