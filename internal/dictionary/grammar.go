package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"go_vocab_galaxy/internal/model"
)

var ErrUnknownPartOfSpeech = errors.New("unknown part of speech")

// ToGrammar は辞書エントリの品詞とタグから文法情報を作ります。
func ToGrammar(entry model.DictionaryEntry) (model.GrammarData, error) {
	return MapGrammar(entry.PartOfSpeech, entry.GrammarTags)
}

// MapGrammar は品詞ごとにタグの有無を調べて GrammarData を組み立てます。
// 未知の品詞はエラー。既定値にはフォールバックしない。
func MapGrammar(pos string, tags []string) (model.GrammarData, error) {
	t := newTagSet(tags)

	switch model.PartOfSpeech(strings.ToLower(pos)) {
	case model.PosNoun:
		return model.NounGrammar{
			Gender:   t.gender(),
			Number:   t.number(),
			IsProper: t.flag("proper"),
		}, nil
	case model.PosVerb:
		return model.VerbGrammar{
			Transitivity: t.transitivity(),
			IsIrregular:  t.flagContains("irregular", "irrégulier"),
			IsPronominal: t.flag("pronominal", "reflexive"),
		}, nil
	case model.PosAdjective:
		var variable *bool
		if t.has("invariable") {
			variable = ptr(false)
		}
		return model.AdjectiveGrammar{Comparison: t.comparison(), Variable: variable}, nil
	case model.PosAdverb:
		return model.AdverbGrammar{Comparison: t.comparison()}, nil
	case model.PosPronoun:
		return model.PronounGrammar{
			Person: t.person(),
			Gender: t.gender(),
			Number: t.number(),
			Type:   pickContains(t, pronounTypes),
		}, nil
	case model.PosPreposition:
		return model.PrepositionGrammar{}, nil
	case model.PosConjunction:
		return model.ConjunctionGrammar{Type: pickContains(t, conjunctionTypes)}, nil
	case model.PosInterjection:
		return model.InterjectionGrammar{}, nil
	case model.PosExpression:
		return model.ExpressionGrammar{Type: pickContains(t, expressionTypes)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartOfSpeech, pos)
	}
}

// カテゴリ名 (英語・仏語) の部分一致で判定する候補。先に書いたものが優先
var (
	pronounTypes = []match[model.PronounType]{
		{model.PronounPersonal, []string{"personal", "personnel"}},
		{model.PronounReflexive, []string{"reflexive", "réfléchi"}},
		{model.PronounDemonstrative, []string{"demonstrative", "démonstratif"}},
		{model.PronounPossessive, []string{"possessive", "possessif"}},
		{model.PronounInterrogative, []string{"interrogative", "interrogatif"}},
		{model.PronounRelative, []string{"relative", "relatif"}},
		{model.PronounIndefinite, []string{"indefinite", "indéfini"}},
	}
	conjunctionTypes = []match[model.ConjunctionType]{
		{model.ConjunctionCoordinating, []string{"coordinating", "coordination"}},
		{model.ConjunctionSubordinating, []string{"subordinating", "subordination"}},
	}
	expressionTypes = []match[model.ExpressionType]{
		{model.ExpressionProverb, []string{"proverb"}},
		{model.ExpressionIdiom, []string{"idiom", "locution"}},
		{model.ExpressionSaying, []string{"saying", "dicton"}},
		{model.ExpressionQuote, []string{"quote", "quotation", "citation"}},
		{model.ExpressionCollocation, []string{"collocation"}},
	}
)

type match[T any] struct {
	value T
	subs  []string
}

func pickContains[T any](t tagSet, candidates []match[T]) *T {
	for _, c := range candidates {
		if t.contains(c.subs...) {
			v := c.value
			return &v
		}
	}
	return nil
}

type tagSet struct {
	exact map[string]bool
	all   []string
}

func newTagSet(tags []string) tagSet {
	s := tagSet{exact: make(map[string]bool, len(tags)), all: make([]string, 0, len(tags))}
	for _, tag := range tags {
		lower := strings.ToLower(strings.TrimSpace(tag))
		if lower == "" {
			continue
		}
		s.exact[lower] = true
		s.all = append(s.all, lower)
	}
	return s
}

func (s tagSet) has(names ...string) bool {
	for _, n := range names {
		if s.exact[n] {
			return true
		}
	}
	return false
}

func (s tagSet) contains(subs ...string) bool {
	for _, tag := range s.all {
		for _, sub := range subs {
			if strings.Contains(tag, sub) {
				return true
			}
		}
	}
	return false
}

// flag はタグがあれば true、なければ nil (不明) を返します。
func (s tagSet) flag(names ...string) *bool {
	if s.has(names...) {
		return ptr(true)
	}
	return nil
}

func (s tagSet) flagContains(subs ...string) *bool {
	if s.contains(subs...) {
		return ptr(true)
	}
	return nil
}

func (s tagSet) gender() *model.Gender {
	switch {
	case s.has("masculine") && s.has("feminine"):
		return nil // 両性。区別できないので不明扱い
	case s.has("masculine"):
		return ptr(model.GenderMasculine)
	case s.has("feminine"):
		return ptr(model.GenderFeminine)
	case s.has("neuter"):
		return ptr(model.GenderNeuter)
	}
	return nil
}

func (s tagSet) number() *model.GrammarNumber {
	switch {
	case s.has("invariable"):
		return ptr(model.NumberInvariable)
	case s.has("plural"):
		return ptr(model.NumberPlural)
	case s.has("singular"):
		return ptr(model.NumberSingular)
	}
	return nil
}

func (s tagSet) transitivity() *model.Transitivity {
	tr, in := s.has("transitive"), s.has("intransitive")
	switch {
	case tr && in:
		return ptr(model.TransBoth)
	case tr:
		return ptr(model.Transitive)
	case in:
		return ptr(model.Intransitive)
	}
	return nil
}

func (s tagSet) comparison() *model.Comparison {
	switch {
	case s.has("superlative"):
		return ptr(model.ComparisonSuperlative)
	case s.has("comparative"):
		return ptr(model.ComparisonComparative)
	}
	return nil
}

func (s tagSet) person() *int {
	switch {
	case s.has("first-person"):
		return ptr(1)
	case s.has("second-person"):
		return ptr(2)
	case s.has("third-person"):
		return ptr(3)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
