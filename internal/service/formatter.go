package service

import (
	"fmt"
	"strings"

	"github.com/tomsquest/wordref/internal/models"
)

// exampleJoiner sits between a source-language example and its target-language
// counterpart on the detail line.
const exampleJoiner = " ⟹ "

// Flatten walks a nested translation result and produces one display record
// per (section, entry, meaning) in source order. No re-sorting happens here;
// ranking is whatever order the dictionary source chose.
//
// The second return value is false when the result holds no translations at
// all, in which case the records are the single no-results sentinel.
func Flatten(result models.TranslationResult, originalText string) ([]models.DisplayRecord, bool) {
	if !result.Found() {
		return []models.DisplayRecord{noResultsRecord(result, originalText)}, false
	}

	var records []models.DisplayRecord
	for sectionIdx, section := range result.Translations {
		for entryIdx, entry := range section.Entries {
			if isQueryEcho(sectionIdx, entryIdx, entry, originalText) {
				continue
			}
			records = append(records, entryRecords(result.URL, sectionIdx, entryIdx, section, entry, originalText)...)
		}
	}

	return records, true
}

// isQueryEcho reports whether an entry is the source echoing the queried word
// back as its own first "translation". The rule hinges on upstream formatting
// always placing that echo at section 0, entry 0; if that convention changes
// upstream, this is the one place to adjust.
func isQueryEcho(sectionIdx, entryIdx int, entry models.Entry, originalText string) bool {
	return sectionIdx == 0 && entryIdx == 0 &&
		strings.EqualFold(entry.FromWord.Source, originalText)
}

// entryRecords emits one record per meaning of a retained entry. An entry
// without meanings contributes nothing.
func entryRecords(url string, sectionIdx, entryIdx int, section models.Section, entry models.Entry, originalText string) []models.DisplayRecord {
	source := strings.TrimSpace(entry.FromWord.Source)
	if source == "" {
		source = originalText
	}

	records := make([]models.DisplayRecord, 0, len(entry.ToWords))
	for toIdx, toWord := range entry.ToWords {
		meaning := strings.TrimSpace(toWord.Meaning)

		record := models.DisplayRecord{
			ID:       fmt.Sprintf("translator_result_%d_%d_%d", sectionIdx, entryIdx, toIdx),
			Headline: headline(source, entry.FromWord.Grammar, toWord),
			Detail:   detail(section, sectionIdx, entry, toIdx),
			Actions: []models.Action{
				{Kind: models.ActionCopy, Label: "Copy translation", Payload: meaning},
			},
		}
		if url != "" {
			record.Actions = append(record.Actions, models.Action{
				Kind: models.ActionOpen, Label: "Open in browser", Payload: url,
			})
		}

		records = append(records, record)
	}
	return records
}

// headline composes "source [grammar] → meaning [grammar] [(notes)]", each
// optional part appended only when present.
func headline(source, fromGrammar string, toWord models.ToWord) string {
	var sb strings.Builder
	sb.WriteString(source)
	if g := strings.TrimSpace(fromGrammar); g != "" {
		sb.WriteString(" ")
		sb.WriteString(g)
	}

	sb.WriteString(" → ")
	sb.WriteString(strings.TrimSpace(toWord.Meaning))
	if g := strings.TrimSpace(toWord.Grammar); g != "" {
		sb.WriteString(" ")
		sb.WriteString(g)
	}
	if n := strings.TrimSpace(toWord.Notes); n != "" {
		sb.WriteString(" (")
		sb.WriteString(n)
		sb.WriteString(")")
	}

	return sb.String()
}

// detail builds the secondary line: the entry context first, then the example
// pair joined by the directional glyph. When the entry offers neither, the
// section title stands in so the record is never blank.
func detail(section models.Section, sectionIdx int, entry models.Entry, toIdx int) string {
	var lines []string
	if entry.Context != "" {
		lines = append(lines, entry.Context)
	}

	var exampleParts []string
	if entry.FromExample != "" {
		exampleParts = append(exampleParts, entry.FromExample)
	}
	if toExample, ok := entry.ToExampleAt(toIdx); ok && toExample != "" {
		exampleParts = append(exampleParts, toExample)
	}
	if len(exampleParts) > 0 {
		lines = append(lines, strings.Join(exampleParts, exampleJoiner))
	}

	if len(lines) == 0 {
		return sectionTitle(section, sectionIdx)
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(section models.Section, sectionIdx int) string {
	if section.Title != "" {
		return section.Title
	}
	return fmt.Sprintf("Section %d", sectionIdx+1)
}

func noResultsRecord(result models.TranslationResult, originalText string) models.DisplayRecord {
	return models.DisplayRecord{
		ID:       "translator_no_results",
		Headline: "No translation results found",
		Detail:   fmt.Sprintf("Could not translate '%s' from %s to %s", originalText, result.FromLang, result.ToLang),
		Actions: []models.Action{
			{Kind: models.ActionCopy, Label: "Try again", Payload: originalText},
		},
	}
}
