//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// run executes the built CLI with the given arguments.
func run(args ...string) error {
	bin := filepath.Join(binDir, binName)
	if _, err := os.Stat(bin); err != nil {
		mg.Deps(Build)
	}
	return sh.RunV(bin, args...)
}

// Ingest registers every .txt file under texts/ as a document.
func Ingest() error {
	matches, err := filepath.Glob("texts/*.txt")
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .txt files under texts/")
	}
	return run(append([]string{"ingest"}, matches...)...)
}

// Parse extracts citations from every registered document.
func Parse() error {
	return run("parse")
}

// Link resolves citations into cross-document relations.
func Link() error {
	return run("link")
}

// Graph runs the full local workflow: parse, link, then print statistics.
func Graph() error {
	mg.SerialDeps(Parse, Link)
	return run("stats")
}
