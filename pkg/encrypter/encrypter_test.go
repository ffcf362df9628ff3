package encrypter

import (
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	enc := New(testKey)

	t.Run("round trip", func(t *testing.T) {
		plaintext := "EAAGraph-api-access-token-value"

		ciphertext, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if ciphertext == plaintext {
			t.Error("ciphertext should differ from plaintext")
		}

		got, err := enc.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if got != plaintext {
			t.Errorf("round trip mismatch: got %s, want %s", got, plaintext)
		}
	})

	t.Run("nonce makes ciphertext unique", func(t *testing.T) {
		a, err := enc.Encrypt("same-input")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		b, err := enc.Encrypt("same-input")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if a == b {
			t.Error("two encryptions of the same input should not match")
		}
	})

	t.Run("tampered ciphertext rejected", func(t *testing.T) {
		ciphertext, err := enc.Encrypt("secret")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		tampered := ciphertext[:len(ciphertext)-2] + "00"
		if tampered == ciphertext {
			tampered = ciphertext[:len(ciphertext)-2] + "11"
		}
		if _, err := enc.Decrypt(tampered); err == nil {
			t.Error("Decrypt should fail on tampered ciphertext")
		}
	})

	t.Run("garbage input rejected", func(t *testing.T) {
		if _, err := enc.Decrypt("not-hex-at-all!"); err == nil {
			t.Error("Decrypt should fail on malformed input")
		}
	})
}

func TestPasswordHash(t *testing.T) {
	enc := New(testKey)

	hash, err := enc.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if strings.Contains(hash, "hunter2") {
		t.Error("hash should not contain the password")
	}

	if !enc.CheckPasswordHash("hunter2", hash) {
		t.Error("correct password should verify")
	}
	if enc.CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}
