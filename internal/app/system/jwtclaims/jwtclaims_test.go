package jwtclaims_test

import (
	"testing"

	"careermate/internal/app/system/jwtclaims"
	"careermate/internal/testutil"
)

func TestDecode_MalformedTokenYieldsEmptyClaims(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b", "a.!!!.c"} {
		claims := jwtclaims.Decode(token)
		if len(claims) != 0 {
			t.Errorf("Decode(%q) = %v, want empty", token, claims)
		}
	}
}

func TestDecode_ReadsPayloadWithoutVerification(t *testing.T) {
	token := testutil.SignedToken(t, map[string]any{"sub": "a@b.com", "name": "지민"})
	claims := jwtclaims.Decode(token)
	if got := jwtclaims.Subject(claims); got != "a@b.com" {
		t.Errorf("Subject = %q", got)
	}
	if got := jwtclaims.DisplayName(claims); got != "지민" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestDisplayName_PrefersNameOverUserName(t *testing.T) {
	token := testutil.SignedToken(t, map[string]any{
		"name": "김철수", "userName": "chulsoo", "sub": "c@d.com",
	})
	if got := jwtclaims.DisplayName(jwtclaims.Decode(token)); got != "김철수" {
		t.Errorf("DisplayName = %q, want 김철수", got)
	}
}

func TestDisplayName_DoesNotFallBackToSubject(t *testing.T) {
	token := testutil.SignedToken(t, map[string]any{"sub": "a@b.com"})
	if got := jwtclaims.DisplayName(jwtclaims.Decode(token)); got != "" {
		t.Errorf("DisplayName = %q, want empty (sub is an email, not a name)", got)
	}
}
