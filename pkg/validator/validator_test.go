package validator

import "testing"

func TestCheck(t *testing.T) {
	v := New()
	v.Check(true, "ok", "should not appear")
	v.Check(false, "phone_number", "must be provided")
	v.Check(false, "phone_number", "second message ignored")

	if v.Valid() {
		t.Fatal("validator with errors must not be valid")
	}
	if got := v.Errors["phone_number"]; got != "must be provided" {
		t.Fatalf("first recorded error must win, got %q", got)
	}
	if _, exists := v.Errors["ok"]; exists {
		t.Fatal("passing check must not record an error")
	}
}

func TestPhoneRX(t *testing.T) {
	valid := []string{"0123456789", "0987654321"}
	invalid := []string{"", "012345678", "01234567890", "01234abcde", "+84123456789"}

	for _, s := range valid {
		if !Matches(s, PhoneRX) {
			t.Errorf("expected %q to match PhoneRX", s)
		}
	}
	for _, s := range invalid {
		if Matches(s, PhoneRX) {
			t.Errorf("expected %q not to match PhoneRX", s)
		}
	}
}

func TestEmailRX(t *testing.T) {
	if !Matches("admin@diacare.vn", EmailRX) {
		t.Error("expected valid email to match")
	}
	if Matches("not-an-email", EmailRX) {
		t.Error("expected invalid email not to match")
	}
}

func TestPermittedValue(t *testing.T) {
	if !PermittedValue("MALE", "MALE", "FEMALE", "OTHER") {
		t.Error("expected MALE to be permitted")
	}
	if PermittedValue("UNKNOWN", "MALE", "FEMALE", "OTHER") {
		t.Error("expected UNKNOWN to be rejected")
	}
}
