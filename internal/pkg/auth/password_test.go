package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "secret123") {
		t.Fatal("expected the correct password to verify")
	}
	if CheckPassword(hash, "secret124") {
		t.Fatal("expected a wrong password to fail verification")
	}
	if CheckPassword(hash, "") {
		t.Fatal("expected an empty password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected per-hash salts to differ")
	}
}
