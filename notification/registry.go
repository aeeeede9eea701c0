package notification

import (
	"fmt"

	"github.com/Jorgeamayapabon/design-patterns/logging"
)

// Factory creates a new Notification for a channel.
type Factory func(log logging.Logger) Notification

var channelRegistry = make(map[string]Factory)

// RegisterChannel registers a notification factory under a unique channel
// name. It should be called at application startup for every channel the
// process can send through. It panics if the channel is already registered.
func RegisterChannel(name string, factory Factory) {
	if _, exists := channelRegistry[name]; exists {
		panic(fmt.Sprintf("notification channel '%s' is already registered", name))
	}
	channelRegistry[name] = factory
}

// New creates a Notification for the named channel. It returns an error if
// the channel was never registered.
func New(name string, log logging.Logger) (Notification, error) {
	factory, ok := channelRegistry[name]
	if !ok {
		return nil, fmt.Errorf("notification channel '%s' not found in registry", name)
	}
	return factory(log), nil
}

// Channels returns the names of all registered channels.
func Channels() []string {
	out := make([]string, 0, len(channelRegistry))
	for name := range channelRegistry {
		out = append(out, name)
	}
	return out
}

func init() {
	RegisterChannel("email", func(log logging.Logger) Notification { return NewEmail(log) })
	RegisterChannel("sms", func(log logging.Logger) Notification { return NewSMS(log) })
	RegisterChannel("whatsapp", func(log logging.Logger) Notification { return NewWhatsApp(log) })
}
