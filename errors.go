package subledger

import "errors"

// Sentinel errors. The decode errors are returned by Decode, wrapped at
// call sites with fmt.Errorf("...: %w", ...) so callers can match via
// errors.Is while still getting a position/value in the message.
var (
	// ErrDictionaryTooLarge is not returned: its text is part of the panic
	// EncodeBytes raises when the supplied EncodingTable has more entries
	// than NumStrings.
	ErrDictionaryTooLarge = errors.New("subledger: dictionary exceeds addressable range")

	// ErrTruncatedReference is returned when a reference's lead byte is
	// the last byte in the stream, leaving no room for its second byte.
	ErrTruncatedReference = errors.New("subledger: truncated reference at end of stream")

	// ErrIndexOutOfRange is returned when a decoded reference index has
	// no corresponding entry in the supplied EncodingTable.
	ErrIndexOutOfRange = errors.New("subledger: reference index out of range")

	// ErrInvalidUTF8Lead is returned when a byte that is neither a valid
	// UTF-8 leading byte nor a reference lead byte is encountered.
	ErrInvalidUTF8Lead = errors.New("subledger: invalid UTF-8 leading byte")

	// ErrTruncatedScalar is returned when a UTF-8 scalar's leading byte
	// promises more continuation bytes than remain in the stream.
	ErrTruncatedScalar = errors.New("subledger: truncated UTF-8 scalar at end of stream")
)
