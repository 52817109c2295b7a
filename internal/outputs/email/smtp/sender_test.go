package smtp

import "testing"

func TestIsLocalDevSMTPHost(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"localhost", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"mailpit", true},
		{"smtp.example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isLocalDevSMTPHost(tc.host); got != tc.want {
			t.Fatalf("isLocalDevSMTPHost(%q)=%v want %v", tc.host, got, tc.want)
		}
	}
}

func TestNewSenderStripsAppPasswordSpaces(t *testing.T) {
	s := NewSender("smtp.gmail.com", 465, "me@gmail.com", "abcd efgh ijkl mnop", "", false)
	if s.password != "abcdefghijklmnop" {
		t.Fatalf("password = %q, want spaces stripped", s.password)
	}
}

func TestResolveTLSMode(t *testing.T) {
	cases := []struct {
		mode string
		port int
		want TLSMode
	}{
		{"", 465, TLSModeImplicit},
		{"", 587, TLSModeStartTLS},
		{"auto", 25, TLSModeStartTLS},
		{"off", 587, TLSModeDisabled},
		{"starttls", 465, TLSModeStartTLS},
		{"implicit", 587, TLSModeImplicit},
	}
	for _, tc := range cases {
		s := NewSender("smtp.example.com", tc.port, "", "", tc.mode, false)
		got, err := s.resolveTLSMode()
		if err != nil {
			t.Fatalf("resolveTLSMode(%q, %d): %v", tc.mode, tc.port, err)
		}
		if got != tc.want {
			t.Fatalf("resolveTLSMode(%q, %d)=%q want %q", tc.mode, tc.port, got, tc.want)
		}
	}

	s := NewSender("smtp.example.com", 587, "", "", "bogus", false)
	if _, err := s.resolveTLSMode(); err == nil {
		t.Fatal("expected error for invalid tls mode")
	}
}
