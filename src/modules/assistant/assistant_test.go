package assistant

import (
	"strings"
	"testing"
)

func TestLookupMatchesTopicKeys(t *testing.T) {
	tests := []struct {
		query   string
		summary string
	}{
		{"how do I get an ll", "Learner's License"},
		{"dl renewal process", "Driving License"},
		{"puc validity", "Pollution Under Control"},
		{"noc for moving to another state", "No Objection Certificate"},
	}
	for _, tt := range tests {
		record, ok := Lookup(tt.query)
		if !ok {
			t.Errorf("Lookup(%q) found no topic", tt.query)
			continue
		}
		if !strings.Contains(record.Summary, tt.summary) {
			t.Errorf("Lookup(%q) summary = %q, want it to mention %q", tt.query, record.Summary, tt.summary)
		}
	}
}

func TestLookupMatchesKeywordAliases(t *testing.T) {
	tests := []struct {
		query   string
		summary string
	}{
		{"I want a learner permit", "Learner's License"},
		{"paying a traffic fine", "penalties"},
		{"pollution certificate renewal", "Pollution Under Control"},
		{"traffic violation penalty amount", "penalties"},
	}
	for _, tt := range tests {
		record, ok := Lookup(tt.query)
		if !ok {
			t.Errorf("Lookup(%q) found no topic", tt.query)
			continue
		}
		if !strings.Contains(record.Summary, tt.summary) {
			t.Errorf("Lookup(%q) summary = %q, want it to mention %q", tt.query, record.Summary, tt.summary)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	upper, ok := Lookup("HYPOTHECATION removal steps")
	if !ok {
		t.Fatal("uppercase query found no topic")
	}
	lower, _ := Lookup("hypothecation removal steps")
	if upper.Summary != lower.Summary {
		t.Fatal("lookup must normalize query case")
	}
}

func TestLookupFallsBackToHelp(t *testing.T) {
	record, ok := Lookup("how do I bake a cake")
	if ok {
		t.Fatal("unrelated query must not match a topic")
	}
	if !strings.Contains(record.Summary, "I can help you with various RTO services") {
		t.Fatalf("fallback summary = %q", record.Summary)
	}
}
