package keycodec

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateUnique(t *testing.T) {
	codec := New("test-secret")

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		secret, err := codec.Generate(12345678901)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !strings.HasPrefix(secret, SecretPrefix) {
			t.Fatalf("secret missing prefix: %q", secret)
		}
		if _, dup := seen[secret]; dup {
			t.Fatalf("duplicate secret generated: %q", secret)
		}
		seen[secret] = struct{}{}
	}
}

func TestGenerateInvalidOrganization(t *testing.T) {
	codec := New("test-secret")

	for _, orgID := range []int64{0, -1} {
		if _, err := codec.Generate(orgID); !errors.Is(err, ErrInvalidOrganization) {
			t.Fatalf("org id %d: expected ErrInvalidOrganization, got %v", orgID, err)
		}
	}
}

func TestHashDeterministicAndOpaque(t *testing.T) {
	codec := New("test-secret")
	secret, err := codec.Generate(12345678901)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h1 := Hash(secret)
	h2 := Hash(secret)
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected sha256 hex digest, got %d chars", len(h1))
	}
	if strings.Contains(secret, h1) || strings.Contains(h1, secret) {
		t.Fatal("hash must not be a substring relation of the secret")
	}
}

func TestThumbnail(t *testing.T) {
	codec := New("test-secret")
	secret, err := codec.Generate(12345678901)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	thumb := Thumbnail(secret)
	if thumb == secret {
		t.Fatal("thumbnail must not equal the secret")
	}
	if want := secret[:7] + "..." + secret[len(secret)-7:]; thumb != want {
		t.Fatalf("thumbnail = %q, want %q", thumb, want)
	}

	// Too short to truncate without losing recognizability.
	if got := Thumbnail("short"); got != "short" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}
