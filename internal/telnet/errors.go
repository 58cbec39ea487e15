package telnet

import (
	"errors"
	"fmt"
	"syscall"
)

// Protocol violations by the client. Each one aborts the connection.
var (
	ErrUnexpectedSubnegByte      = errors.New("unexpected subnegotiation byte")
	ErrNoSubnegCommand           = errors.New("no subnegotiation command")
	ErrNoTermTypeSubnegCommand   = errors.New("no terminal-type subnegotiation command")
	ErrUnexpectedTermTypeCommand = errors.New("unexpected terminal-type subnegotiation command")
	ErrWrongWindowSizeBytes      = errors.New("wrong window size bytes")
)

// ConnectionResetError reports that the peer reset the connection,
// distinguished from other I/O faults.
type ConnectionResetError struct {
	Err error
}

func (e *ConnectionResetError) Error() string {
	return fmt.Sprintf("connection reset by peer: %v", e.Err)
}

func (e *ConnectionResetError) Unwrap() error { return e.Err }

// SendError reports a failed write to the client.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return fmt.Sprintf("send failed: %v", e.Err) }

func (e *SendError) Unwrap() error { return e.Err }

// ReceiveError reports a failed read from the client.
type ReceiveError struct {
	Err error
}

func (e *ReceiveError) Error() string { return fmt.Sprintf("receive failed: %v", e.Err) }

func (e *ReceiveError) Unwrap() error { return e.Err }

// IsProtocolViolation reports whether err is a client protocol violation
// rather than an I/O failure.
func IsProtocolViolation(err error) bool {
	return errors.Is(err, ErrUnexpectedSubnegByte) ||
		errors.Is(err, ErrNoSubnegCommand) ||
		errors.Is(err, ErrNoTermTypeSubnegCommand) ||
		errors.Is(err, ErrUnexpectedTermTypeCommand) ||
		errors.Is(err, ErrWrongWindowSizeBytes)
}

func sendErr(err error) error {
	if errors.Is(err, syscall.ECONNRESET) {
		return &ConnectionResetError{Err: err}
	}
	return &SendError{Err: err}
}

func recvErr(err error) error {
	if errors.Is(err, syscall.ECONNRESET) {
		return &ConnectionResetError{Err: err}
	}
	return &ReceiveError{Err: err}
}
