package auth

import "testing"

func TestSignaturePart(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"1.1", ""},
		{"1.2.3", "3"},
		{"", ""},
		{"abc", ""},
		{"a.b.", ""},
		{"a.b.c.d", "d"},
		{"header.payload.sig-_nature", "sig-_nature"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			if got := SignaturePart(tc.token); got != tc.want {
				t.Fatalf("SignaturePart(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}

func TestWellFormed(t *testing.T) {
	valid := []string{"a.b.c", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc-_DEF", "..", "1.2.3"}
	for _, token := range valid {
		if !WellFormed(token) {
			t.Fatalf("expected %q to be well formed", token)
		}
	}

	invalid := []string{"", "1.1", "a.b.c.d", "a.b.c=", "a b.c.d", "a.b/c.d", "Bearer a.b.c"}
	for _, token := range invalid {
		if WellFormed(token) {
			t.Fatalf("expected %q to be malformed", token)
		}
	}
}
