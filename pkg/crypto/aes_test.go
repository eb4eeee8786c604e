package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "4f3c2b1a09876543210fedcba987654321fedcba9876543210fedcba98765432"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("KeyFromHex() error = %v", err)
	}

	plaintext := "INS-9934-221"
	enc, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if enc == plaintext {
		t.Error("Encrypt() returned plaintext")
	}

	dec, err := Decrypt(key, enc)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if dec != plaintext {
		t.Errorf("Decrypt() = %q, want %q", dec, plaintext)
	}
}

func TestEncryptNonDeterministic(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	a, _ := Encrypt(key, "same value")
	b, _ := Encrypt(key, "same value")
	if a == b {
		t.Error("Encrypt() should produce distinct ciphertexts (random nonce)")
	}
}

func TestDecryptRejectsTampered(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	enc, _ := Encrypt(key, "secret")
	tampered := strings.Replace(enc, enc[5:6], "A", 1)
	if tampered == enc {
		tampered = strings.Replace(enc, enc[5:6], "B", 1)
	}

	if _, err := Decrypt(key, tampered); err == nil {
		t.Error("Decrypt() accepted tampered ciphertext")
	}
}

func TestKeyFromHexRejectsShortKey(t *testing.T) {
	if _, err := KeyFromHex("abcd"); err == nil {
		t.Error("KeyFromHex() accepted a short key")
	}
}
