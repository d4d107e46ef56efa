// Package diff computes line-based differences between two texts.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Operation string

const (
	Equal  Operation = " "
	Insert Operation = "+"
	Delete Operation = "-"
)

// Line is a single line of a diff.
type Line struct {
	Operation Operation
	Text      string
}

// Lines returns the line-by-line difference between before and after.
func Lines(before string, after string) []Line {
	dmp := diffmatchpatch.New()

	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line

	for _, d := range diffs {
		operation := Equal

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			operation = Insert
		case diffmatchpatch.DiffDelete:
			operation = Delete
		case diffmatchpatch.DiffEqual:
		}

		for line := range strings.SplitSeq(strings.TrimSuffix(d.Text, "\n"), "\n") {
			lines = append(lines, Line{Operation: operation, Text: line})
		}
	}

	return lines
}

// HasChanges tells whether any of the lines is an insertion or a deletion.
func HasChanges(lines []Line) bool {
	for _, line := range lines {
		if line.Operation != Equal {
			return true
		}
	}

	return false
}

// Print writes the lines to the given output, prefixed by their operation.
// Unchanged lines are omitted unless full is set.
func Print(out io.Writer, lines []Line, full bool) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, line := range lines {
		var err error

		switch line.Operation {
		case Insert:
			_, err = fmt.Fprintln(out, green("+ "+line.Text))
		case Delete:
			_, err = fmt.Fprintln(out, red("- "+line.Text))
		case Equal:
			if full {
				_, err = fmt.Fprintln(out, "  "+line.Text)
			}
		}

		if err != nil {
			return err
		}
	}

	return nil
}
