package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lexigo/wordsapi"
)

// Attribute is a pflag.Value restricted to the API's verb names.
type Attribute string

func (a *Attribute) Set(val string) error {
	for _, verb := range allVerbs {
		if val == string(verb) {
			*a = Attribute(verb)
			return nil
		}
	}
	return fmt.Errorf("invalid attribute: %s. Possible values are %v", val, allVerbs)
}

func (a Attribute) String() string {
	return string(a)
}

func (a *Attribute) Type() string {
	return "Attribute"
}

var (
	_        pflag.Value = (*Attribute)(nil)
	allVerbs             = []wordsapi.Verb{
		wordsapi.VerbDefinitions,
		wordsapi.VerbExamples,
		wordsapi.VerbSynonyms,
		wordsapi.VerbAntonyms,
		wordsapi.VerbTypeOf,
		wordsapi.VerbHasTypes,
		wordsapi.VerbPartOf,
		wordsapi.VerbHasParts,
		wordsapi.VerbInstanceOf,
		wordsapi.VerbHasInstances,
		wordsapi.VerbSimilarTo,
		wordsapi.VerbSubstanceOf,
		wordsapi.VerbHasSubstances,
		wordsapi.VerbInCategory,
		wordsapi.VerbHasCategories,
		wordsapi.VerbInRegion,
		wordsapi.VerbRegionOf,
		wordsapi.VerbSyllables,
		wordsapi.VerbPronunciation,
		wordsapi.VerbRhymes,
		wordsapi.VerbFrequency,
	}
)

func newLookupCommand() *cobra.Command {
	var attribute Attribute
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word's attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, err := newService(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = service.Close()
			}()

			ctx := cmd.Context()
			if attribute != "" {
				result, err := service.Fetch(ctx, word, wordsapi.Verb(attribute), false)
				if err != nil {
					return fmt.Errorf("service.Fetch > %w", err)
				}
				showValue(wordsapi.Verb(attribute), result[wordsapi.Verb(attribute)])
				return nil
			}

			result, err := service.Fetch(ctx, word, wordsapi.VerbDefinitions, true)
			if err != nil {
				return fmt.Errorf("service.Fetch > %w", err)
			}
			showWord(word, result)
			return nil
		},
	}
	command.Flags().Var(&attribute, "attribute", fmt.Sprintf("single attribute to fetch. Possible values are %v", allVerbs))

	return command
}

func showValue(verb wordsapi.Verb, value wordsapi.Value) {
	switch value.Kind() {
	case wordsapi.KindText:
		fmt.Printf("%s: %s\n", verb, value.Text())
	case wordsapi.KindNumber:
		fmt.Printf("%s: %g\n", verb, value.Number())
	case wordsapi.KindObject:
		fmt.Printf("%s: %v\n", verb, value.Object())
	case wordsapi.KindGroups:
		for _, group := range value.Groups() {
			color.Cyan("/%s/", group.PartOfSpeech)
			for i, entry := range group.Entries {
				fmt.Printf("%d: %s\n", i+1, entry.Definition)
			}
		}
	default:
		fmt.Printf("%s: %s\n", verb, strings.Join(value.Strings(), ", "))
	}
}

func showWord(word string, result map[wordsapi.Verb]wordsapi.Value) {
	header := word
	if pronunciation := result[wordsapi.VerbPronunciation]; pronunciation.Text() != "" {
		header = fmt.Sprintf("%s /%s/", word, pronunciation.Text())
	}
	color.Green("%s", header)

	for _, group := range result[wordsapi.VerbDefinitions].Groups() {
		color.Cyan("/%s/", group.PartOfSpeech)
		for i, entry := range group.Entries {
			synonyms := strings.Join(entry.Details[wordsapi.VerbSynonyms], ", ")
			fmt.Printf("%d: %-80s\t%s\n", i+1, entry.Definition, synonyms)
		}
	}
}
