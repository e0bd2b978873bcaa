package transform_test

import (
	"errors"
	"testing"

	"hbs-jsx/packages/compiler/output"
	"hbs-jsx/packages/compiler/transform"

	"github.com/google/go-cmp/cmp"
)

func TestPathBuilder(t *testing.T) {
	t.Run("should build a left-associative member chain", func(t *testing.T) {
		result, err := transform.BuildPath([]string{"a", "b", "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := output.NewMemberExpression(
			output.NewMemberExpression(output.NewIdentifier("a"), "b"),
			"c",
		)
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("BuildPath() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should build a bare identifier for one segment", func(t *testing.T) {
		result, err := transform.BuildPath([]string{"this"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(output.Expression(output.NewIdentifier("this")), result); diff != "" {
			t.Errorf("BuildPath() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should reject an empty segment list", func(t *testing.T) {
		_, err := transform.BuildPath(nil)
		if !errors.Is(err, transform.ErrEmptyPathSegments) {
			t.Errorf("expected ErrEmptyPathSegments, got %v", err)
		}
		_, err = transform.BuildPath([]string{})
		if !errors.Is(err, transform.ErrEmptyPathSegments) {
			t.Errorf("expected ErrEmptyPathSegments, got %v", err)
		}
	})

	t.Run("should append to the tail", func(t *testing.T) {
		base, _ := transform.BuildPath([]string{"a", "b"})
		result := transform.AppendPath(base, "c")
		if got := output.Emit(result); got != "a.b.c" {
			t.Errorf("AppendPath() = %q, want %q", got, "a.b.c")
		}
		if got := output.Emit(base); got != "a.b" {
			t.Errorf("AppendPath() modified its input: %q", got)
		}
	})

	t.Run("should prepend in front of the head", func(t *testing.T) {
		base, _ := transform.BuildPath([]string{"a", "b", "c"})
		result, err := transform.PrependPath("z", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := transform.BuildPath([]string{"z", "a", "b", "c"})
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("PrependPath() mismatch (-want +got):\n%s", diff)
		}
		if got := output.Emit(base); got != "a.b.c" {
			t.Errorf("PrependPath() modified its input: %q", got)
		}
	})

	t.Run("should prepend to a single identifier", func(t *testing.T) {
		result, err := transform.PrependPath("args", output.NewIdentifier("name"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Emit(result); got != "args.name" {
			t.Errorf("PrependPath() = %q, want %q", got, "args.name")
		}
	})

	t.Run("should refuse to prepend to a non-path", func(t *testing.T) {
		_, err := transform.PrependPath("z", output.NewStringLiteral("x"))
		if !errors.Is(err, transform.ErrNotAPath) {
			t.Errorf("expected ErrNotAPath, got %v", err)
		}
	})
}
