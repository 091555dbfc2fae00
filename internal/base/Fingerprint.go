package base

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/minio/sha256-simd"
)

// Fingerprint is ported close to verbatim from ppb's
// internal/base/Fingerprint.go, including its choice of sha256-simd over
// stdlib crypto/sha256 for the AVX2/SHA-NI accelerated digest.

type Fingerprint [sha256.Size]byte

func (x Fingerprint) String() string {
	return hex.EncodeToString(x[:])
}
func (x Fingerprint) ShortString() string {
	return hex.EncodeToString(x[:8])
}
func (x Fingerprint) Valid() bool {
	for _, b := range x {
		if b != 0 {
			return true
		}
	}
	return false
}
func (x Fingerprint) Slice() []byte { return x[:] }

func (x *Fingerprint) Set(str string) error {
	data, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	if len(data) != sha256.Size {
		return fmt.Errorf("fingerprint: unexpected string length %q", str)
	}
	copy(x[:], data)
	return nil
}

func (x Fingerprint) MarshalText() ([]byte, error) {
	buf := make([]byte, hex.EncodedLen(sha256.Size))
	hex.Encode(buf, x[:])
	return buf, nil
}
func (x *Fingerprint) UnmarshalText(data []byte) error {
	n, err := hex.Decode(x[:], data)
	if err == nil && n != sha256.Size {
		return fmt.Errorf("fingerprint: unexpected string length %q", data)
	}
	return err
}

// StringFingerprint hashes a single string, used to seed a cache namespace
// (ppb's action/ActionCache.go: `seed: base.StringFingerprint("ActionCache-1.0.0")`).
func StringFingerprint(s string) Fingerprint {
	h := sha256.Sum256([]byte(s))
	return Fingerprint(h)
}

// BytesFingerprint hashes an in-memory buffer.
func BytesFingerprint(b []byte) Fingerprint {
	h := sha256.Sum256(b)
	return Fingerprint(h)
}

// ReaderFingerprint hashes the full content of r without buffering it all in
// memory at once.
func ReaderFingerprint(r io.Reader) (Fingerprint, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Fingerprint{}, err
	}
	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out, nil
}

// CombineFingerprints mixes multiple fingerprints into one by hashing their
// bytes in the order given.
func CombineFingerprints(parts ...Fingerprint) Fingerprint {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write(p[:])
	}
	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}
