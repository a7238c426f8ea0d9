package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aledsdavies/blogdown/pkgs/config"
	"github.com/aledsdavies/blogdown/pkgs/generator"
	"github.com/aledsdavies/blogdown/pkgs/lexer"
	"github.com/aledsdavies/blogdown/pkgs/lint"
	"github.com/aledsdavies/blogdown/pkgs/parser"
)

// engineVersion is the compiled-in compiler version checked against a
// blogc.yaml minEngineVersion gate.
const engineVersion = "v0.1.0"

func runBuild(src, dst string) error {
	source, err := os.ReadFile(src)
	if err != nil {
		return &cliError{kind: ExitIOError, err: err}
	}

	cfg, err := loadConfig(src)
	if err != nil {
		return &cliError{kind: ExitInvalidArguments, err: err}
	}

	words, err := loadLintWords(cfg)
	if err != nil {
		return &cliError{kind: ExitIOError, err: err}
	}

	prog, err := parser.Parse(string(source), lexer.WithFilename(src))
	if err != nil {
		return &cliError{kind: exitCodeForParseError(err), err: err}
	}

	if len(words) > 0 {
		scanner, err := lint.NewScanner(words)
		if err != nil {
			return &cliError{kind: ExitInvalidArguments, err: err}
		}
		if hits := scanner.Scan(prog); len(hits) > 0 {
			return &cliError{kind: ExitGenerationError, err: fmt.Errorf("found %d banned phrase(s), first: %q", len(hits), hits[0].Phrase)}
		}
	}

	var b strings.Builder
	if err := generator.Generate(&b, prog); err != nil {
		return &cliError{kind: ExitGenerationError, err: err}
	}

	outputDir := cfg.OutputDir
	dstPath := dst
	if outputDir != "" {
		dstPath = filepath.Join(outputDir, dst)
		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return &cliError{kind: ExitIOError, err: err}
		}
	}

	if err := os.WriteFile(dstPath, []byte(b.String()), 0o644); err != nil {
		return &cliError{kind: ExitIOError, err: err}
	}

	return nil
}

func loadConfig(src string) (config.Config, error) {
	path := filepath.Join(filepath.Dir(src), "blogc.yaml")
	return config.Load(path, engineVersion)
}

func loadLintWords(cfg config.Config) ([]string, error) {
	words := append([]string{}, cfg.LintWords...)
	if lintWordsFile == "" {
		return words, nil
	}
	content, err := os.ReadFile(lintWordsFile)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}
