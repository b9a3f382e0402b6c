package commands

import (
	"testing"
)

func TestSetupOperationsFlags(t *testing.T) {
	fs, flags := SetupOperationsFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Method != "" {
			t.Errorf("expected Method to be empty by default, got '%s'", flags.Method)
		}
		if flags.Chains {
			t.Error("expected Chains to be false by default")
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--method", "get", "--tag", "accounts", "--chains", "--format", "json", "master.yaml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Method != "get" {
			t.Errorf("expected Method 'get', got '%s'", flags.Method)
		}
		if flags.Tag != "accounts" {
			t.Errorf("expected Tag 'accounts', got '%s'", flags.Tag)
		}
		if !flags.Chains {
			t.Error("expected Chains to be true")
		}
		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
	})
}

func TestHandleOperations(t *testing.T) {
	dir := t.TempDir()
	users := writeTestSpec(t, dir, "users.yaml", testUsersYAML)

	t.Run("list all", func(t *testing.T) {
		if err := HandleOperations([]string{"-q", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("with chains", func(t *testing.T) {
		if err := HandleOperations([]string{"-q", "--chains", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if err := HandleOperations([]string{"-q", "--tag", "nonexistent", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if err := HandleOperations([]string{"--format", "xml", users}); err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := HandleOperations([]string{"-q", dir + "/absent.yaml"}); err == nil {
			t.Error("expected error for missing spec file")
		}
	})
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		pathTemplate string
		pattern      string
		want         bool
	}{
		{"/accounts", "", true},
		{"/accounts", "/accounts", true},
		{"/accounts", "/invoices", false},
		{"/accounts/{accountId}", "/accounts/*", true},
		{"/accounts/{accountId}/history", "/accounts/*", false},
		{"/accounts/{accountId}/history", "/accounts/*/history", true},
	}

	for _, tt := range tests {
		t.Run(tt.pathTemplate+" vs "+tt.pattern, func(t *testing.T) {
			if got := matchPath(tt.pathTemplate, tt.pattern); got != tt.want {
				t.Errorf("matchPath(%q, %q) = %v, want %v", tt.pathTemplate, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	tags := []string{"accounts", "Admin"}
	if !hasTag(tags, "accounts") {
		t.Error("expected exact match")
	}
	if !hasTag(tags, "ADMIN") {
		t.Error("expected case-insensitive match")
	}
	if hasTag(tags, "invoices") {
		t.Error("expected no match for absent tag")
	}
	if hasTag(nil, "accounts") {
		t.Error("expected no match for nil tags")
	}
}
