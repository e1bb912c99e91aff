// Package protoerr holds the structured error values produced by the
// decoder. Callers switch on the concrete type rather than matching text.
package protoerr

import "fmt"

// ShortRead is returned when a read would consume more bits than remain in
// the cursor. The residual bits are carried for diagnostics.
type ShortRead struct {
	Needed    int
	Available int
	Residual  []byte
}

func (e *ShortRead) Error() string {
	return fmt.Sprintf("short read: needed %d bits, %d available", e.Needed, e.Available)
}

// UnknownProperty is raised by the object codec when a property key has no
// entry in the class's property table. It is a recoverable (tier 1) error:
// the caller captures Bitsleft on the payload and moves on.
type UnknownProperty struct {
	Class     string
	Key       uint32
	Bitsleft  []byte
	BitsWidth int
}

func (e *UnknownProperty) Error() string {
	return fmt.Sprintf("unknown property %d for class %s", e.Key, e.Class)
}

// TrailingBits is raised when the bits left in an object's property stream
// are fewer than one property key's width, so they cannot be decoded.
type TrailingBits struct {
	Bitsleft  []byte
	BitsWidth int
}

func (e *TrailingBits) Error() string {
	return fmt.Sprintf("%d bits left over in payload", e.BitsWidth)
}

// MalformedFlag is a packet-fatal (tier 2) error raised when a framing flag
// has a value the protocol does not allow (e.g. the flag1a==10 escape's
// required verbatim 11).
type MalformedFlag struct {
	Context string
	Bits    uint64
}

func (e *MalformedFlag) Error() string {
	return fmt.Sprintf("malformed flag in %s: %02b", e.Context, e.Bits)
}

// AlignmentError is a packet-fatal error: the bits left after the packet
// terminator don't match the expected byte-alignment padding count.
type AlignmentError struct {
	Bitsleft int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("alignment error: %d bits left over at end of packet", e.Bitsleft)
}

// StringLengthMismatch is raised by the string codec when the declared
// size doesn't match the actual non-null length of the decoded bytes.
type StringLengthMismatch struct {
	Declared int
	Actual   int
}

func (e *StringLengthMismatch) Error() string {
	return fmt.Sprintf("string length mismatch: declared %d, actual %d", e.Declared, e.Actual)
}

// ValueMismatch is a programming-fatal (tier 3) error raised in debug mode
// when re-encoding a just-decoded value does not reproduce the bits it was
// parsed from. It pinpoints the nested decode call that broke round-trip
// (a property, a payload, a channel frame, a packet part) rather than only
// surfacing a mismatch once the whole packet has been re-encoded.
type ValueMismatch struct {
	Context string
	Bits    int
}

func (e *ValueMismatch) Error() string {
	return fmt.Sprintf("round-trip mismatch in %s after %d bits", e.Context, e.Bits)
}

// Reason names the concrete error type for metric labels, independent of
// the error's text (which may embed arbitrary values). Returns "unknown"
// for anything not defined in this package.
func Reason(err error) string {
	switch err.(type) {
	case *ShortRead:
		return "ShortRead"
	case *UnknownProperty:
		return "UnknownProperty"
	case *TrailingBits:
		return "TrailingBits"
	case *MalformedFlag:
		return "MalformedFlag"
	case *AlignmentError:
		return "AlignmentError"
	case *StringLengthMismatch:
		return "StringLengthMismatch"
	case *ValueMismatch:
		return "ValueMismatch"
	default:
		return "unknown"
	}
}
