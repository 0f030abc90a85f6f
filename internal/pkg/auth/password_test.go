package auth

import "testing"

func TestCheckPasswordPlaintext(t *testing.T) {
	tests := []struct {
		name       string
		credential string
		password   string
		want       bool
	}{
		{"matching plaintext", "letmein", "letmein", true},
		{"wrong plaintext", "letmein", "nope", false},
		{"empty credential rejects empty password match only", "", "", true},
		{"empty password against credential", "letmein", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.credential, tt.password); got != tt.want {
				t.Errorf("CheckPassword(%q, %q) = %v, want %v", tt.credential, tt.password, got, tt.want)
			}
		})
	}
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("letmein")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(hash, "letmein") {
		t.Error("CheckPassword() = false for the hashed password")
	}
	if CheckPassword(hash, "nope") {
		t.Error("CheckPassword() = true for a wrong password")
	}
	// The raw hash string must not pass as the password itself.
	if CheckPassword(hash, hash) {
		t.Error("CheckPassword() = true for the hash used as password")
	}
}
