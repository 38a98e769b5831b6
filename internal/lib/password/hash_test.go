package password

import (
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"обычный пароль", "strongpass1"},
		{"пароль с символами", "p@$$w0rd!-метрополия"},
		{"длинный пароль", strings.Repeat("a", 70)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			if err != nil {
				t.Fatalf("GetHash() error = %v", err)
			}
			if hash == tt.password {
				t.Error("hash must differ from the raw password")
			}
			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("unexpected hash format: %s", hash)
			}
		})
	}
}

func TestGetHash_TooLong(t *testing.T) {
	// bcrypt ограничивает вход 72 байтами.
	_, err := GetHash(strings.Repeat("a", 73))
	if err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("correct-password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"верный пароль", "correct-password", false},
		{"неверный пароль", "wrong-password", true},
		{"пустой пароль", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompareHash() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompareHash_InvalidHash(t *testing.T) {
	if err := CompareHash("not-a-bcrypt-hash", "password"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
