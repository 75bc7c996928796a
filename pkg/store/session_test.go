package store

import "testing"

func TestAnswerSetPreservesInsertionOrder(t *testing.T) {
	answers := NewAnswerSet()
	answers.Set("b", "2")
	answers.Set("a", "1")
	answers.Set("c", "3")

	pairs := answers.Pairs()
	wantIds := []string{"b", "a", "c"}
	if len(pairs) != len(wantIds) {
		t.Fatalf("len = %d, want %d", len(pairs), len(wantIds))
	}
	for i, id := range wantIds {
		if pairs[i].Id != id {
			t.Errorf("pairs[%d].Id = %q, want %q", i, pairs[i].Id, id)
		}
	}
}

func TestAnswerSetUpdateKeepsPosition(t *testing.T) {
	answers := NewAnswerSet()
	answers.Set("first", "old")
	answers.Set("second", "x")
	answers.Set("first", "new")

	if answers.Len() != 2 {
		t.Fatalf("Len = %d, want 2", answers.Len())
	}

	pairs := answers.Pairs()
	if pairs[0].Id != "first" || pairs[0].Answer != "new" {
		t.Errorf("pairs[0] = %+v, want first=new in original position", pairs[0])
	}
	if got, _ := answers.Get("first"); got != "new" {
		t.Errorf("Get(first) = %q, want %q", got, "new")
	}
}

func TestNewSessionStartsEmpty(t *testing.T) {
	session := NewSession("abc")

	if session.ID != "abc" {
		t.Errorf("ID = %q, want %q", session.ID, "abc")
	}
	if session.Answers.Len() != 0 {
		t.Errorf("answers len = %d, want 0", session.Answers.Len())
	}
	if session.Draft != "" || session.Agent != "" {
		t.Error("new session must have no draft and no agent")
	}
}
