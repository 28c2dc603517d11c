package wordsapi

import "fmt"

// transform applies the fixed rule for verb to a decoded response body.
// A verb outside both rule tables is a caller bug and surfaces as
// ErrUnknownVerb, never as an empty result.
func transform(verb Verb, body map[string]any) (Value, error) {
	if rule, ok := groupRules[verb]; ok {
		return transformGroup(body, rule), nil
	}
	if path, ok := flatRules[verb]; ok {
		return transformFlat(body, path), nil
	}
	return Value{}, fmt.Errorf("verb %q: %w", verb, ErrUnknownVerb)
}

// transformFlat follows a key path into the response object.
//
// The missing-key behavior is deliberately asymmetric and surprising, kept
// for compatibility: a single-segment path whose key is absent yields an
// empty list, while a multi-segment path that stops partway yields
// whatever value was last reached, which may be the whole response object.
func transformFlat(body map[string]any, path []string) Value {
	if len(path) == 1 {
		raw, ok := body[path[0]]
		if !ok {
			return listValue(nil)
		}
		return valueFromRaw(raw)
	}

	current := any(body)
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			break
		}
		next, ok := obj[key]
		if !ok {
			break
		}
		current = next
	}
	return valueFromRaw(current)
}

// transformGroup buckets the list at rule.sourceKey by rule.groupField.
// Buckets keep the first-seen order of the grouping value and items keep
// source order within a bucket.
func transformGroup(body map[string]any, rule groupRule) Value {
	items, _ := body[rule.sourceKey].([]any)
	groups := make([]DefinitionGroup, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		groupKey, _ := obj[rule.groupField].(string)
		value, _ := obj[rule.valueField].(string)

		i, ok := index[groupKey]
		if !ok {
			i = len(groups)
			index[groupKey] = i
			groups = append(groups, DefinitionGroup{PartOfSpeech: groupKey})
		}
		groups[i].Entries = append(groups[i].Entries, DefinitionEntry{Definition: value})
	}
	return groupsValue(groups)
}

// transformFull reshapes a full-detail response into a mapping covering the
// hidden verbs, every detail verb accumulated across all definitions, and
// the grouped definitions with each definition's own details attached.
func transformFull(body map[string]any) map[Verb]Value {
	out := make(map[Verb]Value, len(detailVerbs)+3)
	for verb := range hiddenVerbs {
		out[verb] = transformFlat(body, flatRules[verb])
	}

	accumulated := make(map[Verb][]string, len(detailVerbs))
	for _, verb := range detailVerbs {
		accumulated[verb] = []string{}
	}

	results, _ := body["results"].([]any)
	groups := make([]DefinitionGroup, 0, len(results))
	index := make(map[string]int, len(results))

	for _, item := range results {
		result, ok := item.(map[string]any)
		if !ok {
			continue
		}

		details := make(map[Verb][]string)
		for _, verb := range detailVerbs {
			raw, ok := result[string(verb)]
			if !ok {
				continue
			}
			extracted := valueFromRaw(raw).Strings()
			if extracted == nil {
				continue
			}
			details[verb] = extracted
			accumulated[verb] = append(accumulated[verb], extracted...)
		}

		partOfSpeech, _ := result["partOfSpeech"].(string)
		definition, _ := result["definition"].(string)

		i, ok := index[partOfSpeech]
		if !ok {
			i = len(groups)
			index[partOfSpeech] = i
			groups = append(groups, DefinitionGroup{PartOfSpeech: partOfSpeech})
		}
		groups[i].Entries = append(groups[i].Entries, DefinitionEntry{
			Definition: definition,
			Details:    details,
		})
	}

	for _, verb := range detailVerbs {
		out[verb] = listValue(accumulated[verb])
	}
	out[VerbDefinitions] = groupsValue(groups)
	return out
}
