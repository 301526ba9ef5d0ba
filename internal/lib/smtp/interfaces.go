// Package smtp provides the SMTP transport for outgoing reminder mail.
package smtp

import "io"

// Client is the subset of *smtp.Client the sender needs, extracted so
// tests can substitute a fake connection.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface is implemented by Transport and by test fakes.
type TransportInterface interface {
	Connect() (Client, error)
	From() string
}
