package generator

import (
	"strings"
	"testing"
)

func TestCustomerEmailsAreDeterministicAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for id := 1; id <= 5000; id++ {
		email := customerEmail(id)
		if seen[email] {
			t.Fatalf("duplicate email for id %d: %s", id, email)
		}
		seen[email] = true

		if email != customerEmail(id) {
			t.Fatalf("email for id %d is not deterministic", id)
		}
		if !strings.Contains(email, "@") {
			t.Fatalf("malformed email for id %d: %s", id, email)
		}
	}
}

func TestCategoryNamesCoverAnyCount(t *testing.T) {
	seen := make(map[string]bool)
	for id := 1; id <= 100; id++ {
		name := categoryName(id)
		if name == "" {
			t.Fatalf("empty category name for id %d", id)
		}
		if seen[name] {
			t.Fatalf("duplicate category name for id %d: %s", id, name)
		}
		seen[name] = true
	}
}

func TestProductNamesEmbedID(t *testing.T) {
	if got := productName(1); !strings.HasSuffix(got, "#1") {
		t.Errorf("product name %q does not embed its id", got)
	}
	if productName(37) == productName(38) {
		t.Error("adjacent product ids produced identical names")
	}
}
