package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomsquest/wordref/internal/models"
)

func singleEntryResult() models.TranslationResult {
	return models.TranslationResult{
		Word:     "hello",
		FromLang: "English",
		ToLang:   "French",
		Translations: []models.Section{
			{
				Title: "Principal Translations",
				Entries: []models.Entry{
					{
						FromWord: models.Word{Source: "hello"},
						ToWords:  []models.ToWord{{Meaning: "bonjour"}},
					},
				},
			},
		},
	}
}

func TestFlatten_SingleMeaning(t *testing.T) {
	t.Parallel()

	records, found := Flatten(singleEntryResult(), "greeting")

	require.True(t, found)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "translator_result_0_0_0", record.ID)
	assert.Equal(t, "hello → bonjour", record.Headline)
	assert.Equal(t, "Principal Translations", record.Detail)

	require.Len(t, record.Actions, 1)
	assert.Equal(t, models.ActionCopy, record.Actions[0].Kind)
	assert.Equal(t, "bonjour", record.Actions[0].Payload)
}

func TestFlatten_QueryEchoSuppressed(t *testing.T) {
	t.Parallel()

	result := singleEntryResult()
	result.Translations[0].Entries = append(result.Translations[0].Entries, models.Entry{
		FromWord: models.Word{Source: "hello there"},
		ToWords:  []models.ToWord{{Meaning: "salut"}},
	})

	// Case-insensitive match against the queried text drops entry (0,0) only.
	records, found := Flatten(result, "Hello")

	require.True(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "translator_result_0_1_0", records[0].ID)
	assert.Equal(t, "hello there → salut", records[0].Headline)
}

func TestFlatten_EchoRuleOnlyAppliesToFirstEntryOfFirstSection(t *testing.T) {
	t.Parallel()

	result := models.TranslationResult{
		Translations: []models.Section{
			{
				Title: "Principal Translations",
				Entries: []models.Entry{
					{
						FromWord: models.Word{Source: "other"},
						ToWords:  []models.ToWord{{Meaning: "autre"}},
					},
				},
			},
			{
				Title: "Additional Translations",
				Entries: []models.Entry{
					{
						// Same source as the query, but not at (0,0).
						FromWord: models.Word{Source: "hello"},
						ToWords:  []models.ToWord{{Meaning: "allô"}},
					},
				},
			},
		},
	}

	records, found := Flatten(result, "hello")

	require.True(t, found)
	require.Len(t, records, 2)
	assert.Equal(t, "translator_result_1_0_0", records[1].ID)
}

func TestFlatten_HeadlineComposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fromWord models.Word
		toWord   models.ToWord
		want     string
	}{
		{
			name:     "bare meaning",
			fromWord: models.Word{Source: "hello"},
			toWord:   models.ToWord{Meaning: "bonjour"},
			want:     "hello → bonjour",
		},
		{
			name:     "all parts present",
			fromWord: models.Word{Source: "run", Grammar: "vi"},
			toWord:   models.ToWord{Meaning: "courir", Grammar: "vtr", Notes: "informal"},
			want:     "run vi → courir vtr (informal)",
		},
		{
			name:     "grammar without notes",
			fromWord: models.Word{Source: "dog"},
			toWord:   models.ToWord{Meaning: "chien", Grammar: "nm"},
			want:     "dog → chien nm",
		},
		{
			name:     "incidental whitespace trimmed",
			fromWord: models.Word{Source: "cat", Grammar: " n "},
			toWord:   models.ToWord{Meaning: " chat ", Notes: " familier "},
			want:     "cat n → chat (familier)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := models.TranslationResult{
				Translations: []models.Section{
					{Entries: []models.Entry{{FromWord: tt.fromWord, ToWords: []models.ToWord{tt.toWord}}}},
				},
			}

			records, found := Flatten(result, "query")

			require.True(t, found)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Headline)
		})
	}
}

func TestFlatten_DetailComposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry models.Entry
		want  string
	}{
		{
			name: "context and both examples",
			entry: models.Entry{
				Context:     "(greeting)",
				FromWord:    models.Word{Source: "hello"},
				FromExample: "Hello, how are you?",
				ToWords:     []models.ToWord{{Meaning: "bonjour"}},
				ToExamples:  []string{"Bonjour, comment allez-vous ?"},
			},
			want: "(greeting)\nHello, how are you? ⟹ Bonjour, comment allez-vous ?",
		},
		{
			name: "context only",
			entry: models.Entry{
				Context:  "(greeting)",
				FromWord: models.Word{Source: "hello"},
				ToWords:  []models.ToWord{{Meaning: "bonjour"}},
			},
			want: "(greeting)",
		},
		{
			name: "target example only",
			entry: models.Entry{
				FromWord:   models.Word{Source: "hello"},
				ToWords:    []models.ToWord{{Meaning: "bonjour"}},
				ToExamples: []string{"Bonjour !"},
			},
			want: "Bonjour !",
		},
		{
			name: "nothing falls back to section title",
			entry: models.Entry{
				FromWord: models.Word{Source: "hello"},
				ToWords:  []models.ToWord{{Meaning: "bonjour"}},
			},
			want: "Principal Translations",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := models.TranslationResult{
				Translations: []models.Section{
					{Title: "Principal Translations", Entries: []models.Entry{tt.entry}},
				},
			}

			records, found := Flatten(result, "query")

			require.True(t, found)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Detail)
		})
	}
}

func TestFlatten_UntitledSectionGetsSynthesizedName(t *testing.T) {
	t.Parallel()

	result := models.TranslationResult{
		Translations: []models.Section{
			{Title: "First", Entries: []models.Entry{
				{FromWord: models.Word{Source: "a"}, ToWords: []models.ToWord{{Meaning: "x"}}},
			}},
			{Entries: []models.Entry{
				{FromWord: models.Word{Source: "b"}, ToWords: []models.ToWord{{Meaning: "y"}}},
			}},
		},
	}

	records, found := Flatten(result, "query")

	require.True(t, found)
	require.Len(t, records, 2)
	assert.Equal(t, "Section 2", records[1].Detail)
}

func TestFlatten_ExampleOmittedBeyondExamplesLength(t *testing.T) {
	t.Parallel()

	result := models.TranslationResult{
		Translations: []models.Section{
			{Entries: []models.Entry{
				{
					FromWord:   models.Word{Source: "bank"},
					ToWords:    []models.ToWord{{Meaning: "banque"}, {Meaning: "rive"}},
					ToExamples: []string{"Je vais à la banque."},
				},
			}},
		},
	}

	records, found := Flatten(result, "query")

	require.True(t, found)
	require.Len(t, records, 2)
	assert.Equal(t, "Je vais à la banque.", records[0].Detail)
	assert.Equal(t, "Section 1", records[1].Detail, "second meaning has no example at its index")
}

func TestFlatten_EntryWithoutMeaningsContributesNothing(t *testing.T) {
	t.Parallel()

	result := models.TranslationResult{
		Translations: []models.Section{
			{Entries: []models.Entry{
				{FromWord: models.Word{Source: "empty"}},
				{FromWord: models.Word{Source: "full"}, ToWords: []models.ToWord{{Meaning: "plein"}}},
			}},
		},
	}

	records, found := Flatten(result, "query")

	require.True(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "translator_result_0_1_0", records[0].ID)
}

func TestFlatten_OpenAction(t *testing.T) {
	t.Parallel()

	result := singleEntryResult()
	result.URL = "https://www.wordreference.com/enfr/hello"

	records, _ := Flatten(result, "query")

	require.Len(t, records, 1)
	require.Len(t, records[0].Actions, 2)
	assert.Equal(t, models.ActionOpen, records[0].Actions[1].Kind)
	assert.Equal(t, result.URL, records[0].Actions[1].Payload)
}

func TestFlatten_NoResultsSentinel(t *testing.T) {
	t.Parallel()

	result := models.TranslationResult{FromLang: "English", ToLang: "French"}

	records, found := Flatten(result, "blorp")

	assert.False(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "translator_no_results", records[0].ID)
	assert.Contains(t, records[0].Detail, "'blorp'")
	assert.Contains(t, records[0].Detail, "English")
	assert.Contains(t, records[0].Detail, "French")

	require.Len(t, records[0].Actions, 1)
	assert.Equal(t, models.ActionCopy, records[0].Actions[0].Kind)
	assert.Equal(t, "blorp", records[0].Actions[0].Payload)
}

func TestFlatten_Deterministic(t *testing.T) {
	t.Parallel()

	result := bigResult(3, 5, 5)

	first, foundFirst := Flatten(result, "hello")
	second, foundSecond := Flatten(result, "hello")

	assert.Equal(t, foundFirst, foundSecond)
	assert.Equal(t, first, second)
}

func TestFlatten_IDsUnique(t *testing.T) {
	t.Parallel()

	records, found := Flatten(bigResult(3, 5, 5), "hello")

	require.True(t, found)
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		seen[record.ID] = true
	}
	assert.Len(t, seen, len(records))
}

// bigResult builds a dense result of sections×entries×meanings.
func bigResult(sections, entries, meanings int) models.TranslationResult {
	result := models.TranslationResult{URL: "https://www.wordreference.com/enfr/hello"}
	for s := 0; s < sections; s++ {
		section := models.Section{Title: fmt.Sprintf("Title %d", s)}
		for e := 0; e < entries; e++ {
			entry := models.Entry{
				FromWord: models.Word{Source: fmt.Sprintf("word-%d-%d", s, e)},
			}
			for m := 0; m < meanings; m++ {
				entry.ToWords = append(entry.ToWords, models.ToWord{Meaning: fmt.Sprintf("meaning-%d-%d-%d", s, e, m)})
			}
			section.Entries = append(section.Entries, entry)
		}
		result.Translations = append(result.Translations, section)
	}
	return result
}
