// Package wordsapi is a client for the WordsAPI dictionary API on RapidAPI
// (https://rapidapi.com/dpventures/api/wordsapi).
//
// A Service owns the API credentials and performs HTTP lookups. A Word wraps
// one lexical query target and memoizes every attribute it has fetched, so
// repeated accessor calls never hit the network twice:
//
//	service := wordsapi.NewService(wordsapi.Config{APIKey: key})
//	word := service.Word("effect", true)
//	synonyms, err := word.Synonyms(ctx)
package wordsapi
