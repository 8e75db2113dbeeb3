package billing

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusDraft, StatusSent},
		{StatusDraft, StatusVoid},
		{StatusSent, StatusPaid},
		{StatusSent, StatusVoid},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{StatusDraft, StatusPaid},
		{StatusSent, StatusDraft},
		{StatusPaid, StatusSent},
		{StatusPaid, StatusVoid},
		{StatusVoid, StatusDraft},
		{StatusVoid, StatusPaid},
	}
	for _, tr := range forbidden {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be forbidden", tr.from, tr.to)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusSent, StatusPaid, StatusVoid} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "open", "DRAFT", "cancelled"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestEditable(t *testing.T) {
	if !Editable(StatusDraft) || !Editable(StatusSent) {
		t.Fatal("draft and sent invoices must be editable")
	}
	if Editable(StatusPaid) || Editable(StatusVoid) {
		t.Fatal("paid and void invoices must be locked")
	}
}
