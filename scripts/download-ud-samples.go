//go:build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// sample represents one Universal Dependencies treebank file to download
type sample struct {
	name        string
	description string
	url         string
}

var samples = []sample{
	{
		name:        "en_ewt-ud-dev.conllu",
		description: "English Web Treebank (dev split)",
		url:         "https://raw.githubusercontent.com/UniversalDependencies/UD_English-EWT/master/en_ewt-ud-dev.conllu",
	},
	{
		name:        "la_proiel-ud-dev.conllu",
		description: "Latin PROIEL treebank (dev split)",
		url:         "https://raw.githubusercontent.com/UniversalDependencies/UD_Latin-PROIEL/master/la_proiel-ud-dev.conllu",
	},
	{
		name:        "grc_perseus-ud-dev.conllu",
		description: "Ancient Greek Perseus treebank (dev split)",
		url:         "https://raw.githubusercontent.com/UniversalDependencies/UD_Ancient_Greek-Perseus/master/grc_perseus-ud-dev.conllu",
	},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-directory>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDownloads Universal Dependencies sample treebanks for local testing.\n")
		fmt.Fprintf(os.Stderr, "\nExample: %s ./testdata/ud\n", os.Args[0])
		os.Exit(1)
	}

	outputDir := os.Args[1]
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Downloading UD sample treebanks to: %s\n\n", outputDir)

	failed := 0
	for _, s := range samples {
		fmt.Printf("Downloading %s...\n", s.description)
		if err := downloadSample(s, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading %s: %v\n", s.name, err)
			failed++
			continue
		}
		fmt.Printf("✓ Downloaded %s\n\n", s.name)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d download(s) failed\n", failed)
		os.Exit(1)
	}

	fmt.Printf("✓ All sample treebanks downloaded!\n")
	fmt.Printf("Try: go run ./cmd/nifexport %s\n", filepath.Join(outputDir, samples[0].name))
}

func downloadSample(s sample, outputDir string) error {
	fmt.Printf("  Fetching from %s...\n", s.url)
	resp, err := http.Get(s.url)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	out, err := os.Create(filepath.Join(outputDir, s.name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}
	out.Close()

	return nil
}
