package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/transform"
)

// templateSuffixes are the file names a serialized template tree may carry.
var templateSuffixes = []string{".hbs.yaml", ".hbs.yml", ".hbs.json"}

// ErrDuplicateComponent is returned when two template files map to the same output module
var ErrDuplicateComponent = errors.New("duplicate component name")

// TemplateInfo describes one serialized template tree found on disk
type TemplateInfo struct {
	FilePath      string
	ComponentName string
}

// CompileProject compiles every template tree under rootPath into outputPath.
// A relative outputPath is taken relative to rootPath.
func CompileProject(rootPath, outputPath string, t *transform.Transformer, log io.Writer) error {
	fmt.Fprintf(log, "🔨 Compiling templates at: %s\n\n", rootPath)

	templates, err := findTemplates(rootPath, log)
	if err != nil {
		return fmt.Errorf("error finding templates: %w", err)
	}
	if len(templates) == 0 {
		fmt.Fprintln(log, "⚠️  No template trees found")
		return nil
	}
	fmt.Fprintf(log, "📦 Found %d template(s)\n\n", len(templates))

	var outputDir string
	switch {
	case outputPath == "":
		outputDir = filepath.Join(rootPath, "dist", appName)
	case filepath.IsAbs(outputPath):
		outputDir = outputPath
	default:
		outputDir = filepath.Join(rootPath, outputPath)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	fmt.Fprintf(log, "📁 Output directory: %s\n\n", outputDir)

	successCount := 0
	for i, tmpl := range templates {
		fmt.Fprintf(log, "[%d/%d] Compiling %s...\n", i+1, len(templates), tmpl.ComponentName)
		outputFile, err := compileTemplate(tmpl, outputDir, t)
		if err != nil {
			fmt.Fprintf(log, "   ❌ Error: %v\n", err)
			continue
		}
		successCount++
		fmt.Fprintf(log, "   ✅ Wrote %s\n", outputFile)
	}

	fmt.Fprintf(log, "\n✅ Compilation complete: %d/%d templates compiled\n", successCount, len(templates))
	if successCount < len(templates) {
		return fmt.Errorf("%d template(s) failed to compile", len(templates)-successCount)
	}
	return nil
}

// findTemplates walks rootPath for template trees, skipping dependency and build directories.
func findTemplates(rootPath string, log io.Writer) ([]TemplateInfo, error) {
	var templates []TemplateInfo
	seen := make(map[string]string)
	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != rootPath && (info.Name() == "node_modules" || info.Name() == "dist") {
				return filepath.SkipDir
			}
			return nil
		}
		base, ok := trimTemplateSuffix(info.Name())
		if !ok {
			return nil
		}
		name := componentName(base)
		if previous, ok := seen[name]; ok {
			return fmt.Errorf("%w %s: %s and %s", ErrDuplicateComponent, name, previous, path)
		}
		seen[name] = path
		templates = append(templates, TemplateInfo{
			FilePath:      path,
			ComponentName: name,
		})
		fmt.Fprintf(log, "   ✓ Found template: %s\n", path)
		return nil
	})
	return templates, err
}

func trimTemplateSuffix(name string) (string, bool) {
	for _, suffix := range templateSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	return "", false
}

// compileTemplate transforms one tree and writes it as <ComponentName>.jsx.
func compileTemplate(tmpl TemplateInfo, outputDir string, t *transform.Transformer) (string, error) {
	data, err := os.ReadFile(tmpl.FilePath)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", tmpl.FilePath, err)
	}
	template, err := glimmer.Decode(data)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", tmpl.FilePath, err)
	}
	result, err := t.Transform(template)
	if err != nil {
		return "", err
	}

	outputFile := filepath.Join(outputDir, tmpl.ComponentName+".jsx")
	content := GenerateModule(tmpl.ComponentName, tmpl.FilePath, result)
	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("error writing output file %s: %w", outputFile, err)
	}
	return outputFile, nil
}
