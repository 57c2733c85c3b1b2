package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !VerifyPassword("correct horse battery staple", digest) {
		t.Error("expected verification to succeed for the hashed password")
	}
	if VerifyPassword("wrong horse", digest) {
		t.Error("expected verification to fail for a different password")
	}
}

func TestHashesAreSalted(t *testing.T) {
	d1, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	d2, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d1 == d2 {
		t.Error("two hashes of the same password should not be equal")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not a bcrypt digest", "$2a$"} {
		if VerifyPassword("anything", digest) {
			t.Errorf("malformed digest %q verified", digest)
		}
	}
}

func TestLongPasswordsTruncated(t *testing.T) {
	// bcrypt only looks at the first 72 bytes; the hasher truncates on both
	// sides, so passwords sharing a 72-byte prefix are interchangeable.
	prefix := strings.Repeat("a", maxPasswordBytes)
	digest, err := HashPassword(prefix + "tail one")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !VerifyPassword(prefix+"different tail", digest) {
		t.Error("expected passwords sharing the 72-byte prefix to verify")
	}
	if VerifyPassword(prefix[:maxPasswordBytes-1]+"b", digest) {
		t.Error("expected a password differing inside the prefix to fail")
	}
}
