package provider

import "fmt"

// NotificationService fans a message out over both channels of whatever
// provider family its factory produces.
type NotificationService struct {
	email EmailSender
	sms   SMSSender
}

// NewNotificationService builds a service from one provider factory. Both
// senders come from the same family.
func NewNotificationService(f Factory) *NotificationService {
	return &NotificationService{
		email: f.CreateEmailSender(),
		sms:   f.CreateSMSSender(),
	}
}

// Notify sends message to the given email address and phone number.
func (s *NotificationService) Notify(email, phone, message string) error {
	if err := s.email.Send(email, message); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	if err := s.sms.Send(phone, message); err != nil {
		return fmt.Errorf("sms send failed: %w", err)
	}
	return nil
}
