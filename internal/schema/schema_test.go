package schema

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestBuildSchema(t *testing.T) {
	root := &cobra.Command{Use: "suiwallet"}
	child := &cobra.Command{Use: "wallet", Short: "wallet cmds"}
	leaf := &cobra.Command{Use: "positions", Short: "detect protocol positions"}
	leaf.Flags().Int("max-pages", 5, "page cap")
	child.AddCommand(leaf)
	root.AddCommand(child)

	s, err := Build(root, "wallet positions")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Path != "suiwallet wallet positions" {
		t.Fatalf("unexpected path: %s", s.Path)
	}
	if len(s.Flags) != 1 || s.Flags[0].Name != "max-pages" {
		t.Fatalf("unexpected flags: %+v", s.Flags)
	}
}

func TestBuildSchemaUnknownCommand(t *testing.T) {
	root := &cobra.Command{Use: "suiwallet"}
	if _, err := Build(root, "no such thing"); err == nil {
		t.Fatal("expected error for unknown command path")
	}
}
