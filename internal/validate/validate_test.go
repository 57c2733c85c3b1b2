package validate

import (
	"strings"
	"testing"
)

func TestPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Empty", "", true},
		{"TooShort", "hunter2", true},
		{"MinLength", "hunter22", false},
		{"Typical", "correct horse battery staple", false},
		{"AtLimit", strings.Repeat("a", MaxPasswordLen), false},
		{"OverLimit", strings.Repeat("a", MaxPasswordLen+1), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Password(c.password)
			if (err != nil) != c.wantErr {
				t.Errorf("Password(%q) = %v, wantErr %v", c.password, err, c.wantErr)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Empty", "", true},
		{"Plain", "guest@example.com", false},
		{"Subdomain", "a.b@mail.example.org", false},
		{"NoAt", "example.com", true},
		{"NoDot", "guest@example", true},
		{"TwoAts", "a@b@example.com", true},
		{"Spaces", "gu est@example.com", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Email(c.email)
			if (err != nil) != c.wantErr {
				t.Errorf("Email(%q) = %v, wantErr %v", c.email, err, c.wantErr)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	if err := Username(""); err == nil {
		t.Error("expected error for empty username")
	}
	if err := Username(strings.Repeat("x", MaxUsernameLen+1)); err == nil {
		t.Error("expected error for oversized username")
	}
	if err := Username("admin"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
