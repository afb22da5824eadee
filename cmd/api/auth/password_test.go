package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if hash == "s3cure-pass" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !VerifyPassword(hash, "s3cure-pass") {
		t.Fatalf("expected password to verify against its hash")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "whatever") {
		t.Fatalf("expected garbage hash to fail verification")
	}
}
