// internal/model/grammar.go
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidGrammar = errors.New("invalid grammar")

// PartOfSpeech は GrammarData の判別子です。閉じた列挙。
type PartOfSpeech string

const (
	PosNoun         PartOfSpeech = "noun"
	PosVerb         PartOfSpeech = "verb"
	PosAdjective    PartOfSpeech = "adjective"
	PosAdverb       PartOfSpeech = "adverb"
	PosPronoun      PartOfSpeech = "pronoun"
	PosPreposition  PartOfSpeech = "preposition"
	PosConjunction  PartOfSpeech = "conjunction"
	PosInterjection PartOfSpeech = "interjection"
	PosExpression   PartOfSpeech = "expression"
)

type (
	Gender          string
	GrammarNumber   string
	Transitivity    string
	Comparison      string
	PronounType     string
	ConjunctionType string
	ExpressionType  string
)

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"

	NumberSingular   GrammarNumber = "singular"
	NumberPlural     GrammarNumber = "plural"
	NumberInvariable GrammarNumber = "invariable"

	Transitive   Transitivity = "transitive"
	Intransitive Transitivity = "intransitive"
	TransBoth    Transitivity = "both"

	ComparisonPositive    Comparison = "positive"
	ComparisonComparative Comparison = "comparative"
	ComparisonSuperlative Comparison = "superlative"

	PronounPersonal      PronounType = "personal"
	PronounReflexive     PronounType = "reflexive"
	PronounDemonstrative PronounType = "demonstrative"
	PronounPossessive    PronounType = "possessive"
	PronounInterrogative PronounType = "interrogative"
	PronounRelative      PronounType = "relative"
	PronounIndefinite    PronounType = "indefinite"

	ConjunctionCoordinating  ConjunctionType = "coordinating"
	ConjunctionSubordinating ConjunctionType = "subordinating"

	ExpressionIdiom       ExpressionType = "idiom"
	ExpressionProverb     ExpressionType = "proverb"
	ExpressionSaying      ExpressionType = "saying"
	ExpressionQuote       ExpressionType = "quote"
	ExpressionCollocation ExpressionType = "collocation"
	ExpressionOther       ExpressionType = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMasculine || g == GenderFeminine || g == GenderNeuter
}

func (n GrammarNumber) Valid() bool {
	return n == NumberSingular || n == NumberPlural || n == NumberInvariable
}

func (t Transitivity) Valid() bool {
	return t == Transitive || t == Intransitive || t == TransBoth
}

func (c Comparison) Valid() bool {
	return c == ComparisonPositive || c == ComparisonComparative || c == ComparisonSuperlative
}

func (p PronounType) Valid() bool {
	switch p {
	case PronounPersonal, PronounReflexive, PronounDemonstrative, PronounPossessive,
		PronounInterrogative, PronounRelative, PronounIndefinite:
		return true
	}
	return false
}

func (c ConjunctionType) Valid() bool {
	return c == ConjunctionCoordinating || c == ConjunctionSubordinating
}

func (e ExpressionType) Valid() bool {
	switch e {
	case ExpressionIdiom, ExpressionProverb, ExpressionSaying, ExpressionQuote, ExpressionCollocation, ExpressionOther:
		return true
	}
	return false
}

// GrammarAttrs は文法情報の平坦な形です。DBカラムとJSONの両方で使います。
type GrammarAttrs struct {
	PartOfSpeech    string  `gorm:"type:varchar(20);not null" json:"partOfSpeech"`
	Gender          *string `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Number          *string `gorm:"column:grammatical_number;type:varchar(20)" json:"number,omitempty"`
	IsProper        *bool   `json:"isProper,omitempty"`
	Transitivity    *string `gorm:"type:varchar(20)" json:"transitivity,omitempty"`
	IsIrregular     *bool   `json:"isIrregular,omitempty"`
	IsPronominal    *bool   `json:"isPronominal,omitempty"`
	Comparison      *string `gorm:"type:varchar(20)" json:"comparison,omitempty"`
	Variable        *bool   `json:"variable,omitempty"`
	Person          *int    `json:"person,omitempty"`
	PronounType     *string `gorm:"type:varchar(20)" json:"pronounType,omitempty"`
	ConjunctionType *string `gorm:"type:varchar(20)" json:"conjunctionType,omitempty"`
	EmotionType     *string `gorm:"size:50" json:"emotionType,omitempty"`
	ExpressionType  *string `gorm:"type:varchar(20)" json:"expressionType,omitempty"`
	Origin          *string `gorm:"size:255" json:"origin,omitempty"`
}

// Grammar は LexiconEntry または Translation に高々一つ紐づく文法情報です。
type Grammar struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	LexiconID     *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"`
	TranslationID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"`
	GrammarAttrs  `gorm:"embedded"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Grammar) TableName() string {
	return "grammars"
}

// GrammarData は品詞で判別されるタグ付き共用体です。
type GrammarData interface {
	PartOfSpeech() PartOfSpeech
	Attrs() GrammarAttrs
}

type NounGrammar struct {
	Gender   *Gender
	Number   *GrammarNumber
	IsProper *bool
}

type VerbGrammar struct {
	Transitivity *Transitivity
	IsIrregular  *bool
	IsPronominal *bool
}

type AdjectiveGrammar struct {
	Comparison *Comparison
	Variable   *bool
}

type AdverbGrammar struct {
	Comparison *Comparison
}

type PronounGrammar struct {
	Person *int
	Gender *Gender
	Number *GrammarNumber
	Type   *PronounType
}

type PrepositionGrammar struct{}

type ConjunctionGrammar struct {
	Type *ConjunctionType
}

type InterjectionGrammar struct {
	EmotionType *string
}

type ExpressionGrammar struct {
	Type   *ExpressionType
	Origin *string
}

func (NounGrammar) PartOfSpeech() PartOfSpeech         { return PosNoun }
func (VerbGrammar) PartOfSpeech() PartOfSpeech         { return PosVerb }
func (AdjectiveGrammar) PartOfSpeech() PartOfSpeech    { return PosAdjective }
func (AdverbGrammar) PartOfSpeech() PartOfSpeech       { return PosAdverb }
func (PronounGrammar) PartOfSpeech() PartOfSpeech      { return PosPronoun }
func (PrepositionGrammar) PartOfSpeech() PartOfSpeech  { return PosPreposition }
func (ConjunctionGrammar) PartOfSpeech() PartOfSpeech  { return PosConjunction }
func (InterjectionGrammar) PartOfSpeech() PartOfSpeech { return PosInterjection }
func (ExpressionGrammar) PartOfSpeech() PartOfSpeech   { return PosExpression }

func (g NounGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosNoun), Gender: str(g.Gender), Number: str(g.Number), IsProper: g.IsProper}
}

func (g VerbGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosVerb), Transitivity: str(g.Transitivity), IsIrregular: g.IsIrregular, IsPronominal: g.IsPronominal}
}

func (g AdjectiveGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosAdjective), Comparison: str(g.Comparison), Variable: g.Variable}
}

func (g AdverbGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosAdverb), Comparison: str(g.Comparison)}
}

func (g PronounGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosPronoun), Person: g.Person, Gender: str(g.Gender), Number: str(g.Number), PronounType: str(g.Type)}
}

func (g PrepositionGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosPreposition)}
}

func (g ConjunctionGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosConjunction), ConjunctionType: str(g.Type)}
}

func (g InterjectionGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosInterjection), EmotionType: g.EmotionType}
}

func (g ExpressionGrammar) Attrs() GrammarAttrs {
	return GrammarAttrs{PartOfSpeech: string(PosExpression), ExpressionType: str(g.Type), Origin: g.Origin}
}

func str[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// DecodeGrammar は入力値を厳格に検証します。未知の品詞・列挙値はエラー。
func DecodeGrammar(a GrammarAttrs) (GrammarData, error) {
	d := &grammarDecoder{strict: true}
	g := d.decode(a)
	if d.err != nil {
		return nil, d.err
	}
	return g, nil
}

// SanitizeGrammar は保存済みの値を読み出す際に使います。
// 不正な列挙値は捨て、品詞自体が不明なら ok=false を返します。
func SanitizeGrammar(a GrammarAttrs) (GrammarData, bool) {
	d := &grammarDecoder{}
	g := d.decode(a)
	return g, g != nil
}

// Sanitized は Grammar 行を検証済みの平坦な形に変換します。
func (g *Grammar) Sanitized() *GrammarAttrs {
	if g == nil {
		return nil
	}
	data, ok := SanitizeGrammar(g.GrammarAttrs)
	if !ok {
		return nil
	}
	attrs := data.Attrs()
	return &attrs
}

type grammarDecoder struct {
	strict bool
	err    error
}

func (d *grammarDecoder) fail(field string, v any) {
	if d.strict && d.err == nil {
		d.err = fmt.Errorf("%w: invalid %s %v", ErrInvalidGrammar, field, v)
	}
}

func decodeEnum[T ~string](d *grammarDecoder, field string, v *string, valid func(T) bool) *T {
	if v == nil {
		return nil
	}
	t := T(*v)
	if !valid(t) {
		d.fail(field, *v)
		return nil
	}
	return &t
}

func (d *grammarDecoder) person(v *int) *int {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 3 {
		d.fail("person", *v)
		return nil
	}
	p := *v
	return &p
}

func (d *grammarDecoder) decode(a GrammarAttrs) GrammarData {
	switch PartOfSpeech(a.PartOfSpeech) {
	case PosNoun:
		return NounGrammar{
			Gender:   decodeEnum(d, "gender", a.Gender, Gender.Valid),
			Number:   decodeEnum(d, "number", a.Number, GrammarNumber.Valid),
			IsProper: a.IsProper,
		}
	case PosVerb:
		return VerbGrammar{
			Transitivity: decodeEnum(d, "transitivity", a.Transitivity, Transitivity.Valid),
			IsIrregular:  a.IsIrregular,
			IsPronominal: a.IsPronominal,
		}
	case PosAdjective:
		return AdjectiveGrammar{
			Comparison: decodeEnum(d, "comparison", a.Comparison, Comparison.Valid),
			Variable:   a.Variable,
		}
	case PosAdverb:
		return AdverbGrammar{Comparison: decodeEnum(d, "comparison", a.Comparison, Comparison.Valid)}
	case PosPronoun:
		return PronounGrammar{
			Person: d.person(a.Person),
			Gender: decodeEnum(d, "gender", a.Gender, Gender.Valid),
			Number: decodeEnum(d, "number", a.Number, GrammarNumber.Valid),
			Type:   decodeEnum(d, "pronounType", a.PronounType, PronounType.Valid),
		}
	case PosPreposition:
		return PrepositionGrammar{}
	case PosConjunction:
		return ConjunctionGrammar{Type: decodeEnum(d, "conjunctionType", a.ConjunctionType, ConjunctionType.Valid)}
	case PosInterjection:
		return InterjectionGrammar{EmotionType: a.EmotionType}
	case PosExpression:
		return ExpressionGrammar{
			Type:   decodeEnum(d, "expressionType", a.ExpressionType, ExpressionType.Valid),
			Origin: a.Origin,
		}
	default:
		d.fail("partOfSpeech", a.PartOfSpeech)
		return nil
	}
}
