package models

// LanguagePair maps a 4-letter code ("enfr") to human-readable language names.
type LanguagePair struct {
	Code string `json:"code"`
	From string `json:"from"`
	To   string `json:"to"`
}

// TranslationResult is the structured answer of the dictionary source for one
// looked-up word. Translations may be empty when the source has no match.
type TranslationResult struct {
	Word         string    `json:"word"`
	FromLang     string    `json:"from_lang"`
	ToLang       string    `json:"to_lang"`
	URL          string    `json:"url"`
	Translations []Section `json:"translations"`
}

// Found reports whether the result carries any translations at all.
func (r TranslationResult) Found() bool {
	return len(r.Translations) > 0
}

type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

type Entry struct {
	Context     string   `json:"context"`
	FromWord    Word     `json:"from_word"`
	FromExample string   `json:"from_example"`
	ToWords     []ToWord `json:"to_word"`
	ToExamples  []string `json:"to_example"`
}

// ToExampleAt pairs a target example with a meaning by bare position. The
// upstream source gives no stronger contract than index correlation, so a
// meaning past the end of the examples list simply has no example.
func (e Entry) ToExampleAt(i int) (string, bool) {
	if i < 0 || i >= len(e.ToExamples) {
		return "", false
	}
	return e.ToExamples[i], true
}

// Word is the source-language side of an entry.
type Word struct {
	Source  string `json:"source"`
	Grammar string `json:"grammar"`
}

// ToWord is one target-language meaning of an entry.
type ToWord struct {
	Meaning string `json:"meaning"`
	Grammar string `json:"grammar"`
	Notes   string `json:"notes"`
}
