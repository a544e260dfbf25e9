package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go_vocab_galaxy/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 実際のダンプと同じく sense 側と entry 側の両方に訳語がある
var sampleLines = []string{
	`{"word":"livre","pos":"noun","tags":["masculine"],"senses":[{"translations":[{"word":"book","lang_code":"en"},{"word":"книга","lang_code":"ru"}]},{"translations":[{"word":"volume","lang_code":"en"}]}]}`,
	`{"word":"livre","pos":"noun","tags":["feminine"],"translations":[{"word":"pound","code":"en"}]}`,
	`{"word":"livrer","pos":"verb","translations":[{"word":"deliver","lang_code":"en"}]}`,
	`{"word":"Livre","pos":"num","translations":[{"word":"ignored-num","lang_code":"en"}]}`,
	`{"word":"livre","pos":"adj","translations":[{"word":"книжный","lang":"ru"}]}`,
	`{ broken json livre`,
	``,
	`{"word":"être","pos":"verbe","categories":[{"name":"Verbes irréguliers en français"}],"senses":[{"tags":["intransitive"],"translations":[{"word":"be","lang_code":"en"}]}]}`,
	`{"word":"pomme de terre","pos":"nom","categories":["Noms communs en français"],"senses":[{"translations":[{"word":"potato","lang_code":"en"}]}]}`,
	`{"word":"coûter les yeux de la tête","pos":"phrase","senses":[{"categories":["Locutions idiomatiques"],"translations":[{"word":"cost an arm and a leg","lang_code":"en"}]}]}`,
}

func writeDictionary(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestReader_Find(t *testing.T) {
	r := NewReader(writeDictionary(t, sampleLines))
	ctx := context.Background()

	t.Run("ファイル中の順で英訳を返す", func(t *testing.T) {
		entries, err := r.Find(ctx, "livre", model.LangEN)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "noun", entries[0].PartOfSpeech)
		assert.Equal(t, []model.DictionaryTranslation{{Word: "book", Lang: "en"}, {Word: "volume", Lang: "en"}}, entries[0].Translations)
		assert.Contains(t, entries[0].GrammarTags, "masculine")

		assert.Equal(t, "pound", entries[1].Translations[0].Word)

		// 未知の品詞はそのまま返し、変換側でエラーにする
		assert.Equal(t, "num", entries[2].PartOfSpeech)
	})

	t.Run("対象言語の訳がないエントリは除外", func(t *testing.T) {
		entries, err := r.Find(ctx, "livre", model.LangRU)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "книга", entries[0].Translations[0].Word)
		assert.Equal(t, "adjective", entries[1].PartOfSpeech)
	})

	t.Run("非ASCIIの見出し語とカテゴリ", func(t *testing.T) {
		entries, err := r.Find(ctx, "être", model.LangEN)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "verb", entries[0].PartOfSpeech)

		g, err := ToGrammar(entries[0])
		require.NoError(t, err)
		assert.Equal(t, model.VerbGrammar{Transitivity: ptr(model.Intransitive), IsIrregular: ptr(true)}, g)
	})

	t.Run("表現はタグから種類を推定", func(t *testing.T) {
		entries, err := r.Find(ctx, "coûter les yeux de la tête", model.LangEN)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		g, err := ToGrammar(entries[0])
		require.NoError(t, err)
		assert.Equal(t, model.ExpressionGrammar{Type: ptr(model.ExpressionIdiom)}, g)
	})

	t.Run("見つからない", func(t *testing.T) {
		entries, err := r.Find(ctx, "xyzzy", model.LangEN)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestReader_Find_Errors(t *testing.T) {
	t.Run("ファイルがない", func(t *testing.T) {
		_, err := NewReader(filepath.Join(t.TempDir(), "missing.jsonl")).Find(context.Background(), "livre", model.LangEN)
		assert.Error(t, err)
	})

	t.Run("キャンセル済み", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewReader(writeDictionary(t, sampleLines)).Find(ctx, "livre", model.LangEN)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
