package gcc

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a malformed container: truncated or over-length
	// buffers, stream-size mismatches, or headers that cannot be parsed.
	// Decoding never attempts partial recovery.
	ErrFormat = errors.New("gcc: malformed container")

	// ErrBadMagic reports a buffer that does not start with the GCC magic.
	ErrBadMagic = fmt.Errorf("%w: bad magic", ErrFormat)

	// ErrBadVersion reports a container version this package does not decode.
	ErrBadVersion = fmt.Errorf("%w: unsupported version", ErrFormat)

	// ErrVocabularyOverflow is returned during compression when a tokenizing
	// mode would need a 257th distinct token. No container bytes are produced.
	ErrVocabularyOverflow = errors.New("gcc: vocabulary exceeds 256 distinct tokens")

	// ErrTokenTooLong is returned during compression when a single token
	// exceeds the 65535-byte limit of its length prefix.
	ErrTokenTooLong = errors.New("gcc: token longer than 65535 bytes")

	// ErrDecodeConsistency reports a container whose streams decode to
	// something other than what its header declares: a token ID with no
	// vocabulary entry, or a bitstream that yields fewer symbols than its
	// declared count. It signals corruption or a foreign file.
	ErrDecodeConsistency = errors.New("gcc: decoded stream inconsistent with header")

	// ErrTooLarge is returned during compression when a symbol occurs more
	// often than the container's 32-bit frequency counters can record.
	ErrTooLarge = errors.New("gcc: input exceeds 32-bit frequency counters")
)

// errFormat wraps ErrFormat with detail about what failed to parse.
func errFormat(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrFormat}, args...)...)
}
