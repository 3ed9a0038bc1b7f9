package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"fortio.org/safecast"
)

// Algorithm selects the cryptographic digest applied to the combined stream.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// Algorithms lists the supported algorithms. The first entry is the CLI default.
func Algorithms() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA384, SHA512}
}

// UnsupportedAlgorithmError reports a request for an algorithm outside the
// supported set. It is always raised before any file is touched.
type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q (supported: sha1, sha256, sha384, sha512)", e.Name)
}

// ParseAlgorithm validates a user-supplied algorithm token, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if err := algo.Validate(); err != nil {
		return "", err
	}
	return algo, nil
}

// Validate reports whether the algorithm belongs to the supported set.
func (a Algorithm) Validate() error {
	switch a {
	case SHA1, SHA256, SHA384, SHA512:
		return nil
	}
	return &UnsupportedAlgorithmError{Name: string(a)}
}

func (a Algorithm) new() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	}
	return nil, &UnsupportedAlgorithmError{Name: string(a)}
}

// Compute concatenates the chunks in the order given, without separators or
// length prefixes, and returns the lowercase hex digest of the combined
// stream. An empty chunk list yields the digest of the empty byte sequence.
func Compute(chunks [][]byte, algo Algorithm) (string, error) {
	h, err := algo.new()
	if err != nil {
		return "", err
	}

	var total int64
	for _, c := range chunks {
		total += int64(len(c))
	}
	size, err := safecast.Conv[int](total)
	if err != nil {
		return "", fmt.Errorf("combined content too large: %w", err)
	}

	buf := make([]byte, 0, size)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil)), nil
}
