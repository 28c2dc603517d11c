package wordsapi

// Verb is one named lexical relation or property of a word, matching the
// attribute names the API uses in its URLs and response fields.
type Verb string

const (
	VerbDefinitions   Verb = "definitions"
	VerbExamples      Verb = "examples"
	VerbSynonyms      Verb = "synonyms"
	VerbAntonyms      Verb = "antonyms"
	VerbTypeOf        Verb = "typeOf"
	VerbHasTypes      Verb = "hasTypes"
	VerbPartOf        Verb = "partOf"
	VerbHasParts      Verb = "hasParts"
	VerbInstanceOf    Verb = "instanceOf"
	VerbHasInstances  Verb = "hasInstances"
	VerbSimilarTo     Verb = "similarTo"
	VerbSubstanceOf   Verb = "substanceOf"
	VerbHasSubstances Verb = "hasSubstances"
	VerbInCategory    Verb = "inCategory"
	VerbHasCategories Verb = "hasCategories"
	VerbInRegion      Verb = "inRegion"
	VerbRegionOf      Verb = "regionOf"
	VerbDerivation    Verb = "derivation"
	VerbSyllables     Verb = "syllables"
	VerbPronunciation Verb = "pronunciation"
	VerbRhymes        Verb = "rhymes"
	VerbFrequency     Verb = "frequency"
)

// flatRules maps a verb to the key path followed into the response object.
var flatRules = map[Verb][]string{
	VerbExamples:      {"examples"},
	VerbSynonyms:      {"synonyms"},
	VerbAntonyms:      {"antonyms"},
	VerbTypeOf:        {"typeOf"},
	VerbHasTypes:      {"hasTypes"},
	VerbPartOf:        {"partOf"},
	VerbHasParts:      {"hasParts"},
	VerbInstanceOf:    {"instanceOf"},
	VerbHasInstances:  {"hasInstances"},
	VerbSimilarTo:     {"similarTo"},
	VerbSubstanceOf:   {"substanceOf"},
	VerbHasSubstances: {"hasSubstances"},
	VerbInCategory:    {"inCategory"},
	VerbHasCategories: {"hasCategories"},
	VerbInRegion:      {"inRegion"},
	VerbRegionOf:      {"regionOf"},
	VerbDerivation:    {"derivation"},
	VerbFrequency:     {"frequency"},
	VerbSyllables:     {"syllables", "list"},
	VerbPronunciation: {"pronunciation", "all"},
	VerbRhymes:        {"rhymes", "all"},
}

// groupRule buckets the list at sourceKey by groupField, projecting each
// item to valueField.
type groupRule struct {
	sourceKey  string
	groupField string
	valueField string
}

var groupRules = map[Verb]groupRule{
	VerbDefinitions: {sourceKey: "results", groupField: "partOfSpeech", valueField: "definition"},
}

// hiddenVerbs have no per-attribute endpoint and are always served from the
// full-detail response.
var hiddenVerbs = map[Verb]bool{
	VerbSyllables:     true,
	VerbPronunciation: true,
}

// detailVerbs are the relation lists that appear inside each entry of the
// full-detail response's results list, in accumulation order.
var detailVerbs = []Verb{
	VerbExamples,
	VerbSynonyms,
	VerbAntonyms,
	VerbTypeOf,
	VerbHasTypes,
	VerbPartOf,
	VerbHasParts,
	VerbInstanceOf,
	VerbHasInstances,
	VerbSimilarTo,
	VerbSubstanceOf,
	VerbHasSubstances,
	VerbInCategory,
	VerbHasCategories,
	VerbInRegion,
	VerbRegionOf,
	VerbDerivation,
}
