package telnet

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"go.uber.org/zap"

	"telnet-animations/internal/animation"
)

// Session runs Telnet negotiation for one accepted connection. It keeps
// interpreting inbound commands for the connection's whole lifetime; the
// animation, once started, streams concurrently through the shared sink.
type Session struct {
	r    *bufio.Reader
	sink animation.Sink
	log  *zap.SugaredLogger

	// start spawns the connection's animation task. It is invoked at most
	// once, on the first terminal-type resolution: an explicit WONT
	// terminal-type or a completed terminal-type subnegotiation.
	start   func()
	started bool
}

// NewSession wires a session over the connection's inbound stream and
// shared output sink.
func NewSession(r io.Reader, sink animation.Sink, log *zap.SugaredLogger, start func()) *Session {
	return &Session{
		r:     bufio.NewReader(r),
		sink:  sink,
		log:   log,
		start: start,
	}
}

// Run sends the initial terminal-type offer, then interprets inbound
// commands until an I/O failure or a protocol violation. It never returns
// nil.
func (s *Session) Run() error {
	if err := s.respond(IAC, DO, OptTerminalType); err != nil {
		return err
	}
	for {
		b, err := s.readByte()
		if err != nil {
			return err
		}
		if b == IAC {
			if err := s.processCommand(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, recvErr(err)
	}
	return b, nil
}

func (s *Session) respond(b ...byte) error {
	if err := s.sink.WriteFrame(b); err != nil {
		return sendErr(err)
	}
	return nil
}

func (s *Session) startAnimation() {
	if s.started {
		s.log.Debug("terminal type resolved again; animation already running")
		return
	}
	s.started = true
	s.start()
}

func (s *Session) processCommand() error {
	cmd, err := s.readByte()
	if err != nil {
		return err
	}
	switch cmd {
	case DO, DONT, WILL, WONT:
		opt, err := s.readByte()
		if err != nil {
			return err
		}
		return s.processOption(cmd, opt)
	case SB:
		return s.processSubnegotiation()
	default:
		s.log.Debugf("ignoring command 0x%02x", cmd)
		return nil
	}
}

func (s *Session) processOption(cmd, opt byte) error {
	switch cmd {
	case DO:
		// The client wants us to enable a feature; we offer none.
		s.log.Debugf("refusing DO option %d (0x%02x)", opt, opt)
		return s.respond(IAC, WONT, opt)

	case DONT:
		s.log.Debugf("ignoring DONT option %d (0x%02x)", opt, opt)
		return nil

	case WILL:
		switch opt {
		case OptWindowSize:
			return s.respond(IAC, DO, opt)
		case OptTerminalType:
			// Ask the client to send its terminal type.
			return s.respond(IAC, SB, OptTerminalType, TermTypeSend, IAC, SE)
		default:
			s.log.Debugf("refusing WILL option %d (0x%02x)", opt, opt)
			return s.respond(IAC, DONT, opt)
		}

	case WONT:
		if opt == OptTerminalType {
			// The client will not name its terminal. Assume ANSI and roll.
			s.startAnimation()
			return nil
		}
		s.log.Debugf("ignoring WONT option %d (0x%02x)", opt, opt)
		return nil
	}
	return nil
}

func (s *Session) processSubnegotiation() error {
	payload, err := s.readSubnegPayload()
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return ErrNoSubnegCommand
	}
	switch opt := payload[0]; opt {
	case OptTerminalType:
		return s.handleTerminalType(payload[1:])
	case OptWindowSize:
		return s.handleWindowSize(payload)
	default:
		s.log.Debugf("ignoring subnegotiation for option %d (0x%02x)", opt, opt)
		return nil
	}
}

// readSubnegPayload accumulates bytes until IAC SE. An IAC IAC pair inside
// the payload unescapes to one literal 255; any other byte after an
// embedded IAC is a protocol violation.
func (s *Session) readSubnegPayload() ([]byte, error) {
	var payload []byte
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if b != IAC {
			payload = append(payload, b)
			continue
		}
		next, err := s.readByte()
		if err != nil {
			return nil, err
		}
		switch next {
		case SE:
			return payload, nil
		case IAC:
			payload = append(payload, IAC)
		default:
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnexpectedSubnegByte, next)
		}
	}
}

func (s *Session) handleTerminalType(rest []byte) error {
	if len(rest) == 0 {
		return ErrNoTermTypeSubnegCommand
	}
	if rest[0] != TermTypeIs {
		return fmt.Errorf("%w: 0x%02x", ErrUnexpectedTermTypeCommand, rest[0])
	}

	// Bytes decode 1:1 to characters; the name is informational only.
	name := make([]rune, len(rest)-1)
	for i, b := range rest[1:] {
		name[i] = rune(b)
	}
	s.log.Infof("client terminal type is %q", string(name))

	s.startAnimation()
	return nil
}

func (s *Session) handleWindowSize(payload []byte) error {
	// One option byte plus two big-endian 16-bit values.
	if len(payload) != 5 {
		return fmt.Errorf("%w: got %d, want 5", ErrWrongWindowSizeBytes, len(payload))
	}
	cols := binary.BigEndian.Uint16(payload[1:3])
	rows := binary.BigEndian.Uint16(payload[3:5])
	s.log.Infof("client terminal has %d columns and %d rows", cols, rows)
	return nil
}
