package passhash

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	enc, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(enc, "$argon2id$") {
		t.Fatalf("unexpected encoding prefix: %s", enc)
	}

	ok, err := VerifyPassword("correct horse battery staple", enc)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatal("verification must succeed for the original password")
	}
}

func TestHashPassword_RandomSalt(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("repeated hashing of the same password must produce different encodings")
	}

	for _, h := range []string{h1, h2} {
		ok, err := VerifyPassword("password123", h)
		if err != nil || !ok {
			t.Fatalf("verify failed for %s: ok=%v err=%v", h, ok, err)
		}
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	enc, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := VerifyPassword("password124", enc)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Fatal("verification must fail for a different password")
	}
}

func TestVerifyPassword_MalformedEncodings(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}

	for _, enc := range cases {
		ok, err := VerifyPassword("whatever", enc)
		if ok {
			t.Fatalf("malformed encoding %q must never verify", enc)
		}
		if err == nil {
			t.Fatalf("malformed encoding %q must return an error", enc)
		}
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("some reasonably sized password")
	}
}
