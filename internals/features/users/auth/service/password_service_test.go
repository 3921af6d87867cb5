package service

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := CheckPasswordHash(hash, "s3cret-password"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input should differ")
	}
}
