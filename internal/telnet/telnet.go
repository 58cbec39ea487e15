// Package telnet implements the server side of the Telnet negotiation this
// service needs: the RFC 854 command framing plus terminal-type (RFC 1091)
// and window-size (RFC 1073) options. Once the client's terminal capability
// is resolved, a session starts the connection's animation.
package telnet

// Command bytes (RFC 854).
const (
	// IAC (interpret as command) introduces every command sequence.
	IAC byte = 255

	// SE ends a subnegotiation.
	SE byte = 240

	// SB begins a subnegotiation.
	SB byte = 250

	// WILL announces a party wants to enable a feature on its own end.
	WILL byte = 251

	// WONT announces a party wants to disable a feature on its own end.
	WONT byte = 252

	// DO asks the other party to enable a feature.
	DO byte = 253

	// DONT asks the other party to disable a feature.
	DONT byte = 254
)

// Negotiable options.
const (
	OptTerminalType byte = 24 // RFC 1091
	OptWindowSize   byte = 31 // RFC 1073 (NAWS)
)

// Terminal-type subnegotiation subcommands.
const (
	TermTypeIs   byte = 0
	TermTypeSend byte = 1
)
