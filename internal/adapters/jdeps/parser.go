// Package jdeps builds the class dependency graph from the output of the
// jdeps bytecode analyzer.
package jdeps

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseReport reads a `jdeps -verbose:class` report and produces a frozen
// dependency graph with reversed edges: for every "A -> B" line, A is
// recorded as a dependent of B.
//
// Class-level lines are indented; unindented lines are archive summaries and
// are skipped. Edges to classes outside the configured package roots (JDK and
// third-party classes) are dropped. Classes matching a full-rebuild trigger
// prefix are marked DependencyToAll.
func ParseReport(r io.Reader, cfg domain.AnalysisConfig) (*domain.DependencyGraph, error) {
	b := domain.NewGraphBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || !isIndented(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "->" {
			return nil, zerr.With(domain.ErrMalformedReport, "line", lineNo)
		}

		source := fields[0]
		target := fields[2]

		if !tracked(source, cfg.PackageRoots) {
			continue
		}
		if matchesTrigger(source, cfg.FullRebuildTriggers) {
			b.MarkDependencyToAll(domain.NewClassName(source))
		}
		if !tracked(target, cfg.PackageRoots) {
			continue
		}

		b.AddDependency(domain.NewClassName(source), domain.NewClassName(target))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency report")
	}

	return b.Build(), nil
}

func isIndented(line string) bool {
	return line[0] == ' ' || line[0] == '\t'
}

// tracked reports whether the class belongs to the project. With no package
// roots configured every class is tracked.
func tracked(class string, roots []string) bool {
	if len(roots) == 0 {
		return true
	}
	for _, root := range roots {
		if strings.HasPrefix(class, root) {
			return true
		}
	}
	return false
}

func matchesTrigger(class string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.HasPrefix(class, trigger) {
			return true
		}
	}
	return false
}
