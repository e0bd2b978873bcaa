package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hbs-jsx/packages/compiler/transform"
)

const greetingTree = `
type: Template
body:
  - type: ElementNode
    tag: p
    attributes:
      - {type: AttrNode, name: class, value: {type: TextNode, chars: greeting}}
    children:
      - {type: TextNode, chars: "Hello, "}
      - type: MustacheStatement
        path: {type: PathExpression, original: "@name"}
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTransformCommand(t *testing.T) {
	t.Run("should transform stdin", func(t *testing.T) {
		out, _, err := run(t, greetingTree, "transform")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "<p className=\"greeting\">Hello, {args.name}</p>\n"; out != want {
			t.Errorf("output = %q, want %q", out, want)
		}
	})

	t.Run("should transform a file and report progress", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "greeting.hbs.yaml")
		if err := os.WriteFile(path, []byte(greetingTree), 0644); err != nil {
			t.Fatal(err)
		}
		out, errOut, err := run(t, "", "transform", "--verbose", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "<p ") {
			t.Errorf("output = %q", out)
		}
		if !strings.Contains(errOut, "decoded 1 top-level statements") {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("should apply a config file", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("attributeRenames:\n  class: class\n"), 0644); err != nil {
			t.Fatal(err)
		}
		out, _, err := run(t, greetingTree, "transform", "--config", cfgPath, "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `class="greeting"`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("should surface transform errors", func(t *testing.T) {
		_, _, err := run(t, "[{type: CommentStatement, value: x}]", "transform")
		if !errors.Is(err, transform.ErrUnsupportedTopLevelConstruct) {
			t.Errorf("expected ErrUnsupportedTopLevelConstruct, got %v", err)
		}
	})

	t.Run("should surface decode errors", func(t *testing.T) {
		_, _, err := run(t, "{type: Nope}", "transform")
		if err == nil || !strings.Contains(err.Error(), "unknown node type") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hbs-jsx dev\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCompileProject(t *testing.T) {
	t.Run("should compile every template tree", func(t *testing.T) {
		root := t.TempDir()
		write := func(rel, content string) {
			path := filepath.Join(root, rel)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
		write("components/user-card.hbs.yaml", greetingTree)
		write("components/notes.txt", "not a template")
		write("node_modules/lib/skip.hbs.yaml", "{type: Nope}")

		var log bytes.Buffer
		if err := CompileProject(root, "", transform.New(nil), &log); err != nil {
			t.Fatalf("unexpected error: %v\n%s", err, log.String())
		}

		data, err := os.ReadFile(filepath.Join(root, "dist", appName, "UserCard.jsx"))
		if err != nil {
			t.Fatalf("expected output file: %v", err)
		}
		if !strings.Contains(string(data), "export default function UserCard(args) {\n  return <p className=\"greeting\">Hello, {args.name}</p>;\n}\n") {
			t.Errorf("unexpected module:\n%s", data)
		}
		if !strings.Contains(log.String(), "1/1 templates compiled") {
			t.Errorf("log = %s", log.String())
		}
	})

	t.Run("should report failed templates", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "bad.hbs.json"), []byte(`{"type": "Nope"}`), 0644); err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(t.TempDir(), "out")
		err := CompileProject(root, out, transform.New(nil), io.Discard)
		if err == nil {
			t.Fatal("expected an error")
		}
		if _, statErr := os.Stat(out); statErr != nil {
			t.Errorf("output directory not created: %v", statErr)
		}
	})

	t.Run("should refuse templates that share a component name", func(t *testing.T) {
		root := t.TempDir()
		first := filepath.Join(root, "a", "user-card.hbs.yaml")
		second := filepath.Join(root, "b", "user_card.hbs.yaml")
		for _, path := range []string{first, second} {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(greetingTree), 0644); err != nil {
				t.Fatal(err)
			}
		}

		err := CompileProject(root, "", transform.New(nil), io.Discard)
		if !errors.Is(err, ErrDuplicateComponent) {
			t.Fatalf("expected ErrDuplicateComponent, got %v", err)
		}
		if !strings.Contains(err.Error(), first) || !strings.Contains(err.Error(), second) {
			t.Errorf("error %q does not name both files", err)
		}
		if _, statErr := os.Stat(filepath.Join(root, "dist", appName, "UserCard.jsx")); !os.IsNotExist(statErr) {
			t.Errorf("expected no output module, stat returned %v", statErr)
		}
	})

	t.Run("should do nothing without templates", func(t *testing.T) {
		if err := CompileProject(t.TempDir(), "", transform.New(nil), io.Discard); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestComponentName(t *testing.T) {
	tests := map[string]string{
		"user-card": "UserCard",
		"user_card": "UserCard",
		"Button":    "Button",
		"nav.bar":   "NavBar",
		"404":       "T404",
		"élan":      "Élan",
		"":          "Template",
	}
	for input, want := range tests {
		if got := componentName(input); got != want {
			t.Errorf("componentName(%q) = %q, want %q", input, got, want)
		}
	}
}
