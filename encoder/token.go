package encoder

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/text/unicode/norm"
)

// tokenEnc is the process-wide canonical CBOR encoder: sorted map
// keys and shortest-form numbers, so equal values always serialize
// to equal bytes. Initialized once, never mutated.
var tokenEnc cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("encoder: canonical CBOR mode: " + err.Error())
	}
	tokenEnc = em
}

// tokenBytes serializes v into its canonical token form. String atoms
// are NFC-normalized first so visually identical text compares
// byte-equal.
func tokenBytes(v any) ([]byte, error) {
	b, err := tokenEnc.Marshal(normalize(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrTokenEncode, v, err)
	}
	return b, nil
}

// pairToken serializes the ordered pair (a, b) as a single token:
// the canonical form of the 2-element array. Pair direction is
// preserved — (a, b) and (b, a) are distinct tokens.
func pairToken(a, b any) ([]byte, error) {
	tok, err := tokenEnc.Marshal([2]any{normalize(a), normalize(b)})
	if err != nil {
		return nil, fmt.Errorf("%w: pair (%T, %T): %v", ErrTokenEncode, a, b, err)
	}
	return tok, nil
}

func normalize(v any) any {
	if s, ok := v.(string); ok {
		return norm.NFC.String(s)
	}
	return v
}
