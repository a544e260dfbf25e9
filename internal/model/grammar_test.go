package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func TestDecodeGrammar(t *testing.T) {
	person := 3
	badPerson := 4
	tests := []struct {
		name    string
		in      GrammarAttrs
		want    GrammarData
		wantErr bool
	}{
		{
			name: "名詞",
			in:   GrammarAttrs{PartOfSpeech: "noun", Gender: sp("feminine"), Number: sp("singular")},
			want: NounGrammar{Gender: ptrTo(GenderFeminine), Number: ptrTo(NumberSingular)},
		},
		{
			name: "他品詞の属性は捨てる",
			in:   GrammarAttrs{PartOfSpeech: "preposition", Gender: sp("masculine")},
			want: PrepositionGrammar{},
		},
		{
			name: "代名詞",
			in:   GrammarAttrs{PartOfSpeech: "pronoun", Person: &person, PronounType: sp("personal")},
			want: PronounGrammar{Person: &person, Type: ptrTo(PronounPersonal)},
		},
		{name: "人称が範囲外", in: GrammarAttrs{PartOfSpeech: "pronoun", Person: &badPerson}, wantErr: true},
		{name: "不正な性", in: GrammarAttrs{PartOfSpeech: "noun", Gender: sp("common")}, wantErr: true},
		{name: "不正な表現種別", in: GrammarAttrs{PartOfSpeech: "expression", ExpressionType: sp("slang")}, wantErr: true},
		{name: "未知の品詞", in: GrammarAttrs{PartOfSpeech: "article"}, wantErr: true},
		{name: "品詞なし", in: GrammarAttrs{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeGrammar(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGrammar)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrammar_Sanitized(t *testing.T) {
	t.Run("不正な列挙値は落とす", func(t *testing.T) {
		g := &Grammar{GrammarAttrs: GrammarAttrs{PartOfSpeech: "verb", Transitivity: sp("sometimes"), IsIrregular: ptrTo(true)}}
		got := g.Sanitized()
		require.NotNil(t, got)
		assert.Equal(t, "verb", got.PartOfSpeech)
		assert.Nil(t, got.Transitivity)
		assert.Equal(t, ptrTo(true), got.IsIrregular)
	})

	t.Run("品詞が不明なら nil", func(t *testing.T) {
		g := &Grammar{GrammarAttrs: GrammarAttrs{PartOfSpeech: "article"}}
		assert.Nil(t, g.Sanitized())
	})

	t.Run("nil レシーバ", func(t *testing.T) {
		var g *Grammar
		assert.Nil(t, g.Sanitized())
	})
}

func TestLexiconEntry_OwnedBy(t *testing.T) {
	owner := "user-1"
	owned := &LexiconEntry{UserID: &owner}
	legacy := &LexiconEntry{}

	assert.True(t, owned.OwnedBy("user-1"))
	assert.False(t, owned.OwnedBy("user-2"))
	assert.True(t, owned.OwnedBy(""))
	assert.True(t, legacy.OwnedBy("user-2"))
}

func ptrTo[T any](v T) *T { return &v }
