// Package provider implements the abstract factory pattern with messaging
// provider families. A Factory produces a matched pair of email and SMS
// senders for one provider (AWS, Twilio); NotificationService consumes a
// factory without knowing which family it got.
package provider

import "github.com/Jorgeamayapabon/design-patterns/logging"

// EmailSender sends an email message to a recipient address.
type EmailSender interface {
	Send(to, message string) error
}

// SMSSender sends a text message to a phone number.
type SMSSender interface {
	Send(to, message string) error
}

// Factory creates a family of senders belonging to one provider.
type Factory interface {
	CreateEmailSender() EmailSender
	CreateSMSSender() SMSSender
}

// AWSFactory produces AWS-backed senders.
type AWSFactory struct {
	Log logging.Logger
}

// CreateEmailSender implements Factory.
func (f AWSFactory) CreateEmailSender() EmailSender { return &awsEmailSender{log: f.Log} }

// CreateSMSSender implements Factory.
func (f AWSFactory) CreateSMSSender() SMSSender { return &awsSMSSender{log: f.Log} }

// TwilioFactory produces Twilio-backed senders.
type TwilioFactory struct {
	Log logging.Logger
}

// CreateEmailSender implements Factory.
func (f TwilioFactory) CreateEmailSender() EmailSender { return &twilioEmailSender{log: f.Log} }

// CreateSMSSender implements Factory.
func (f TwilioFactory) CreateSMSSender() SMSSender { return &twilioSMSSender{log: f.Log} }

type awsEmailSender struct {
	log logging.Logger
}

func (s *awsEmailSender) Send(to, message string) error {
	s.log.Info("sending email via AWS to %s... message: %s", to, message)
	return nil
}

type awsSMSSender struct {
	log logging.Logger
}

func (s *awsSMSSender) Send(to, message string) error {
	s.log.Info("sending SMS via AWS to %s... message: %s", to, message)
	return nil
}

type twilioEmailSender struct {
	log logging.Logger
}

func (s *twilioEmailSender) Send(to, message string) error {
	s.log.Info("sending email via Twilio to %s... message: %s", to, message)
	return nil
}

type twilioSMSSender struct {
	log logging.Logger
}

func (s *twilioSMSSender) Send(to, message string) error {
	s.log.Info("sending SMS via Twilio to %s... message: %s", to, message)
	return nil
}
