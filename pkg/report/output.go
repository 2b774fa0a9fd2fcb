package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputPath determines where the rendered document should be
// written. An empty outputArg means no file output. An existing directory,
// or an argument spelled with a trailing path separator, gets a
// synthesized "pr-<number>-<sanitized title>.md" file inside it; anything
// else is taken as a literal file path.
func ResolveOutputPath(outputArg, title string, number int) string {
	if outputArg == "" {
		return ""
	}

	info, err := os.Stat(outputArg)
	isDir := err == nil && info.IsDir()
	if isDir || strings.HasSuffix(outputArg, "/") || strings.HasSuffix(outputArg, string(os.PathSeparator)) {
		filename := fmt.Sprintf("pr-%d-%s.md", number, SanitizeFilename(title))
		return filepath.Join(outputArg, filename)
	}

	return outputArg
}

// WriteDocument writes the fully assembled document to path, creating
// parent directories as needed. The document is written in a single call
// so no partial file is left behind on earlier pipeline failures.
func WriteDocument(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
