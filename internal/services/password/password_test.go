package password

import (
	"errors"
	"strings"
	"testing"
)

// cheap keeps the tests fast; the format is identical to DefaultParams.
var cheap = Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashAndVerify(t *testing.T) {
	hash, err := HashWithParams("correct horse", cheap)
	if err != nil {
		t.Fatalf("HashWithParams() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Errorf("unexpected hash format: %s", hash)
	}

	if err := Verify("correct horse", hash); err != nil {
		t.Errorf("Verify(correct) error = %v", err)
	}
	if err := Verify("wrong horse", hash); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify(wrong) error = %v, want ErrMismatch", err)
	}
}

// TestHash_Salted checks that the same password never hashes the same way.
func TestHash_Salted(t *testing.T) {
	a, _ := HashWithParams("same password", cheap)
	b, _ := HashWithParams("same password", cheap)
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestHash_Default(t *testing.T) {
	hash, err := Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if err := Verify("pw", hash); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	tests := []string{
		"",
		"plain-sha256-hex",
		"$2a$10$bcrypthashbcrypthashbcrypthashbcrypthashbcrypthash",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
	}

	for _, encoded := range tests {
		if err := Verify("pw", encoded); !errors.Is(err, ErrInvalidHash) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidHash", encoded, err)
		}
	}
}
