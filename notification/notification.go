// Package notification implements the factory method pattern with console
// notification senders. A Creator decides which concrete Notification to
// build; Send is the shared template that creates one and dispatches the
// message through it. Channels can also be resolved by name through a
// process-wide factory registry.
package notification

import "github.com/Jorgeamayapabon/design-patterns/logging"

// Notification is a single messaging channel.
type Notification interface {
	// Send delivers message through the channel.
	Send(message string) error
}

// Creator builds a concrete Notification. Implementations pick the channel;
// Send supplies the common dispatch flow.
type Creator interface {
	CreateNotification() Notification
}

// Send creates a notification from the given creator and dispatches the
// message through it.
func Send(c Creator, message string) error {
	return c.CreateNotification().Send(message)
}

// Email delivers messages via email.
type Email struct {
	log logging.Logger
}

// NewEmail creates an email notification writing through log.
func NewEmail(log logging.Logger) *Email {
	return &Email{log: log}
}

// Send implements Notification.
func (n *Email) Send(message string) error {
	n.log.Info("sending notification via email... message: %s", message)
	return nil
}

// SMS delivers messages via SMS.
type SMS struct {
	log logging.Logger
}

// NewSMS creates an SMS notification writing through log.
func NewSMS(log logging.Logger) *SMS {
	return &SMS{log: log}
}

// Send implements Notification.
func (n *SMS) Send(message string) error {
	n.log.Info("sending notification via SMS... message: %s", message)
	return nil
}

// WhatsApp delivers messages via WhatsApp.
type WhatsApp struct {
	log logging.Logger
}

// NewWhatsApp creates a WhatsApp notification writing through log.
func NewWhatsApp(log logging.Logger) *WhatsApp {
	return &WhatsApp{log: log}
}

// Send implements Notification.
func (n *WhatsApp) Send(message string) error {
	n.log.Info("sending notification via WhatsApp... message: %s", message)
	return nil
}

// EmailCreator builds Email notifications.
type EmailCreator struct {
	Log logging.Logger
}

// CreateNotification implements Creator.
func (c EmailCreator) CreateNotification() Notification { return NewEmail(c.Log) }

// SMSCreator builds SMS notifications.
type SMSCreator struct {
	Log logging.Logger
}

// CreateNotification implements Creator.
func (c SMSCreator) CreateNotification() Notification { return NewSMS(c.Log) }

// WhatsAppCreator builds WhatsApp notifications.
type WhatsAppCreator struct {
	Log logging.Logger
}

// CreateNotification implements Creator.
func (c WhatsAppCreator) CreateNotification() Notification { return NewWhatsApp(c.Log) }
