package commands

import "testing"

func TestHandleWalk_Routing(t *testing.T) {
	t.Run("no subcommand", func(t *testing.T) {
		if err := HandleWalk(nil); err == nil {
			t.Error("expected error when no subcommand is given")
		}
	})

	t.Run("unknown subcommand", func(t *testing.T) {
		if err := HandleWalk([]string{"paths"}); err == nil {
			t.Error("expected error for unknown subcommand")
		}
	})

	t.Run("help", func(t *testing.T) {
		if err := HandleWalk([]string{"--help"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestHandleWalkSchemas(t *testing.T) {
	dir := t.TempDir()
	users := writeTestSpec(t, dir, "users.yaml", testUsersYAML)

	t.Run("all schemas", func(t *testing.T) {
		if err := handleWalkSchemas([]string{"-q", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("definitions only", func(t *testing.T) {
		if err := handleWalkSchemas([]string{"-q", "--definitions-only", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		if err := handleWalkSchemas([]string{"-q"}); err == nil {
			t.Error("expected error when no spec file is given")
		}
	})
}

func TestHandleWalkRefs(t *testing.T) {
	dir := t.TempDir()
	users := writeTestSpec(t, dir, "users.yaml", testUsersYAML)

	t.Run("all refs", func(t *testing.T) {
		if err := handleWalkRefs([]string{"-q", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("filter by target", func(t *testing.T) {
		if err := handleWalkRefs([]string{"-q", "--target", "#/definitions/Account", users}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if err := handleWalkRefs([]string{"--format", "xml", users}); err == nil {
			t.Error("expected error for invalid format")
		}
	})
}
