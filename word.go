package wordsapi

import (
	"context"
	"sync"
)

// Word is one lexical query target. Each accessor either answers from the
// word's cache or performs one lookup through the owning Service and
// memoizes the result; once an attribute is cached it is never refetched
// for the word's lifetime. Failed lookups are never cached, so a caller
// can retry simply by calling the accessor again.
//
// A mutex serializes fetches, so concurrent callers for the same uncached
// attribute issue at most one request between them.
type Word struct {
	text            string
	service         *Service
	prefetchDetails bool

	mu          sync.Mutex
	cache       map[Verb]Value
	fullFetched bool
}

// Text returns the word's literal text.
func (w *Word) Text() string {
	return w.text
}

func (w *Word) get(ctx context.Context, verb Verb, full bool) (Value, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if value, ok := w.cache[verb]; ok {
		return value, nil
	}

	// Once a full-detail response has been merged, a still-missing verb
	// can only come from its own endpoint.
	if w.fullFetched {
		full = false
	}

	if err := w.fetch(ctx, verb, full); err != nil {
		return Value{}, err
	}
	if value, ok := w.cache[verb]; ok {
		return value, nil
	}

	// The full-detail response does not carry this verb (e.g. rhymes,
	// frequency); fall back to the per-attribute endpoint.
	if err := w.fetch(ctx, verb, false); err != nil {
		return Value{}, err
	}
	return w.cache[verb], nil
}

func (w *Word) fetch(ctx context.Context, verb Verb, full bool) error {
	fetched, err := w.service.Fetch(ctx, w.text, verb, full)
	if err != nil {
		return err
	}
	if full || hiddenVerbs[verb] {
		w.fullFetched = true
	}
	for fetchedVerb, value := range fetched {
		w.cache[fetchedVerb] = value
	}
	return nil
}

// Definitions returns the word's definitions grouped by part of speech.
// An explicit fetchDetails argument overrides the word's prefetch flag for
// this call only; without one the flag decides whether a full-detail fetch
// is used.
func (w *Word) Definitions(ctx context.Context, fetchDetails ...bool) (Value, error) {
	full := w.prefetchDetails
	if len(fetchDetails) > 0 {
		full = fetchDetails[0]
	}
	return w.get(ctx, VerbDefinitions, full)
}

// Sentences returns example sentences using the word.
func (w *Word) Sentences(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbExamples, w.prefetchDetails)
}

// Synonyms returns words with the same meaning.
func (w *Word) Synonyms(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbSynonyms, w.prefetchDetails)
}

// Antonyms returns words with the opposite meaning.
func (w *Word) Antonyms(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbAntonyms, w.prefetchDetails)
}

// GenericWords returns words this word is a type of.
func (w *Word) GenericWords(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbTypeOf, w.prefetchDetails)
}

// SpecificWords returns words that are a type of this word.
func (w *Word) SpecificWords(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbHasTypes, w.prefetchDetails)
}

// IsPartOf returns words this word is a part of.
func (w *Word) IsPartOf(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbPartOf, w.prefetchDetails)
}

// Parts returns the parts of this word.
func (w *Word) Parts(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbHasParts, w.prefetchDetails)
}

// KnownAs returns words this word is an instance of.
func (w *Word) KnownAs(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbInstanceOf, w.prefetchDetails)
}

// Instances returns instances of this word.
func (w *Word) Instances(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbHasInstances, w.prefetchDetails)
}

// SimilarWords returns words similar to this word.
func (w *Word) SimilarWords(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbSimilarTo, w.prefetchDetails)
}

// SubstanceOf returns what this word is a substance of.
func (w *Word) SubstanceOf(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbSubstanceOf, w.prefetchDetails)
}

// Substances returns the substances of this word.
func (w *Word) Substances(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbHasSubstances, w.prefetchDetails)
}

// Category returns the categories this word belongs to.
func (w *Word) Category(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbInCategory, w.prefetchDetails)
}

// SubCategories returns the categories of this word.
func (w *Word) SubCategories(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbHasCategories, w.prefetchDetails)
}

// Region returns the regions where this word is used.
func (w *Word) Region(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbInRegion, w.prefetchDetails)
}

// RegionOf returns what this word is the region of.
func (w *Word) RegionOf(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbRegionOf, w.prefetchDetails)
}

// Syllables returns the word's syllable list.
func (w *Word) Syllables(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbSyllables, w.prefetchDetails)
}

// Pronunciation returns the word's pronunciation.
func (w *Word) Pronunciation(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbPronunciation, w.prefetchDetails)
}

// Rhymes returns words rhyming with this word.
func (w *Word) Rhymes(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbRhymes, w.prefetchDetails)
}

// Frequency returns how common the word is.
func (w *Word) Frequency(ctx context.Context) (Value, error) {
	return w.get(ctx, VerbFrequency, w.prefetchDetails)
}
