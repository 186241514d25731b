package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword("pw123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// A garbage stored hash must fail closed, not panic.
	if CheckPassword("pw123", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash accepted")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical")
	}
}
