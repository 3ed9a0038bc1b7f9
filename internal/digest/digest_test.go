package digest

import (
	"errors"
	"regexp"
	"testing"
)

const sha256ABCDEF = "bef57ec7f53a6d40beb640a780a639c83bc29ac8a9816f1fc6c5c6dcd93c4721"

var emptyDigests = map[Algorithm]string{
	SHA1:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	SHA256: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	SHA384: "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b",
	SHA512: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		input string
		want  Algorithm
		ok    bool
	}{
		{"sha1", SHA1, true},
		{"sha256", SHA256, true},
		{"sha384", SHA384, true},
		{"sha512", SHA512, true},
		{"SHA256", SHA256, true},
		{" sha512 ", SHA512, true},
		{"md5", "", false},
		{"sha-256", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAlgorithm(tc.input)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseAlgorithm(%q) = %q, want %q", tc.input, got, tc.want)
			}
			continue
		}
		var uerr *UnsupportedAlgorithmError
		if !errors.As(err, &uerr) {
			t.Fatalf("ParseAlgorithm(%q) error = %v, want UnsupportedAlgorithmError", tc.input, err)
		}
		if uerr.Name == "" && tc.input != "" {
			t.Fatalf("ParseAlgorithm(%q): error does not carry the offending name", tc.input)
		}
	}
}

func TestComputeEmptyStream(t *testing.T) {
	for algo, want := range emptyDigests {
		got, err := Compute(nil, algo)
		if err != nil {
			t.Fatalf("Compute(nil, %s) error: %v", algo, err)
		}
		if got != want {
			t.Fatalf("Compute(nil, %s) = %q, want %q", algo, got, want)
		}
	}
}

func TestComputeConcatenatesInOrder(t *testing.T) {
	chunks := [][]byte{[]byte("abc"), []byte("def")}
	got, err := Compute(chunks, SHA256)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if got != sha256ABCDEF {
		t.Fatalf("Compute = %q, want %q", got, sha256ABCDEF)
	}

	// Chunk boundaries must not influence the digest.
	single, err := Compute([][]byte{[]byte("abcdef")}, SHA256)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if single != got {
		t.Fatalf("chunked digest %q != unchunked digest %q", got, single)
	}

	reversed, err := Compute([][]byte{[]byte("def"), []byte("abc")}, SHA256)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if reversed == got {
		t.Fatalf("reversed chunk order produced the same digest %q", got)
	}
}

func TestComputeDigestLengths(t *testing.T) {
	hexOnly := regexp.MustCompile(`^[0-9a-f]+$`)
	lengths := map[Algorithm]int{
		SHA1:   40,
		SHA256: 64,
		SHA384: 96,
		SHA512: 128,
	}
	for algo, want := range lengths {
		got, err := Compute([][]byte{[]byte("abc")}, algo)
		if err != nil {
			t.Fatalf("Compute(%s) error: %v", algo, err)
		}
		if len(got) != want {
			t.Fatalf("Compute(%s) length = %d, want %d", algo, len(got), want)
		}
		if !hexOnly.MatchString(got) {
			t.Fatalf("Compute(%s) = %q, not lowercase hex", algo, got)
		}
	}
}

func TestComputeDistinctAcrossAlgorithms(t *testing.T) {
	content := [][]byte{[]byte("same input")}
	seen := make(map[string]Algorithm)
	for _, algo := range Algorithms() {
		got, err := Compute(content, algo)
		if err != nil {
			t.Fatalf("Compute(%s) error: %v", algo, err)
		}
		if prev, dup := seen[got]; dup {
			t.Fatalf("algorithms %s and %s produced the same digest %q", prev, algo, got)
		}
		seen[got] = algo
	}
}

func TestComputeRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Compute([][]byte{[]byte("abc")}, Algorithm("md5"))
	var uerr *UnsupportedAlgorithmError
	if !errors.As(err, &uerr) {
		t.Fatalf("Compute error = %v, want UnsupportedAlgorithmError", err)
	}
}
