package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"semitone/internal/history"
	"semitone/internal/media"
	"semitone/internal/services"
)

// journalOutcome records one engine operation in the history journal.
func (c *commandContext) journalOutcome(opID, kind, source, destination string, runErr error) {
	record := history.Record{
		OperationID: opID,
		Kind:        kind,
		Source:      source,
		Destination: destination,
		Status:      history.StatusCompleted,
	}
	if runErr != nil {
		record.Status = history.StatusFailed
		record.Detail = fmt.Sprintf("%s: %s", services.FailureLabel(runErr), runErr)
	}
	c.journal(record)
}

// formatSeconds renders a duration in seconds as m:ss for display.
func formatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func describeAudioFile(file media.AudioFile) []string {
	lines := []string{
		fmt.Sprintf("Name:     %s", file.Name),
		fmt.Sprintf("Path:     %s", file.Path),
		fmt.Sprintf("Format:   %s", file.Format),
		fmt.Sprintf("Size:     %s", humanize.Bytes(uint64(file.Size))),
	}
	if file.Duration != nil {
		lines = append(lines, fmt.Sprintf("Duration: %s", formatSeconds(*file.Duration)))
	} else {
		lines = append(lines, "Duration: unknown")
	}
	return lines
}

func titleLabel(value string) string {
	value = strings.ReplaceAll(strings.TrimSpace(value), "-", " ")
	if value == "" {
		return ""
	}
	return cases.Title(language.Und).String(value)
}
