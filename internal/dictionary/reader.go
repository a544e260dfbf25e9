// Package dictionary はオフライン辞書 (Wiktionary の JSONL ダンプ) の検索と、
// 辞書エントリから文法情報への変換を提供します。
package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
)

// 1行の最大サイズ (16 MB)。長い見出し語は数MBになる
const maxLineSize = 16 << 20

// kaikkiEntry は JSONL 1行のうち必要な部分だけを表します。
type kaikkiEntry struct {
	Word         string              `json:"word"`
	POS          string              `json:"pos"`
	Tags         []string            `json:"tags"`
	Categories   []category          `json:"categories"`
	Senses       []kaikkiSense       `json:"senses"`
	Translations []kaikkiTranslation `json:"translations"`
}

type kaikkiSense struct {
	Tags         []string            `json:"tags"`
	Categories   []category          `json:"categories"`
	Translations []kaikkiTranslation `json:"translations"`
}

type kaikkiTranslation struct {
	Word     string `json:"word"`
	Lang     string `json:"lang"`
	LangCode string `json:"lang_code"`
	Code     string `json:"code"`
}

// category は文字列と {"name": ...} の両方の形式を受け付けます。
type category string

func (c *category) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*c = category(obj.Name)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = category(s)
	return nil
}

func (t kaikkiTranslation) matches(lang model.Lang) bool {
	want := string(lang)
	return strings.EqualFold(t.LangCode, want) || strings.EqualFold(t.Code, want) || strings.EqualFold(t.Lang, want)
}

// Reader は JSONL ファイルを検索のたびに先頭から走査します。
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Find は見出し語が大文字小文字を無視して一致し、targetLang の訳語を持つエントリを
// ファイル中の順に返します。
func (r *Reader) Find(ctx context.Context, word string, targetLang model.Lang) ([]model.DictionaryEntry, error) {
	logger := middleware.GetLogger(ctx)

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Reader.Find: open: %w", err)
	}
	defer f.Close()

	// JSON側で \uXXXX にエスケープされうるため、ASCIIの語だけ事前に絞り込む
	var needle []byte
	if isASCII(word) {
		needle = []byte(strings.ToLower(word))
	}
	var results []model.DictionaryEntry
	malformed := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for lineNo := 0; scanner.Scan(); lineNo++ {
		if lineNo%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || (needle != nil && !bytes.Contains(bytes.ToLower(line), needle)) {
			continue
		}

		var entry kaikkiEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			malformed++
			continue
		}
		if !strings.EqualFold(entry.Word, word) {
			continue
		}

		if e, ok := toEntry(&entry, targetLang); ok {
			results = append(results, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary.Reader.Find: scan: %w", err)
	}

	if malformed > 0 {
		logger.Warn("Skipped malformed dictionary lines", "count", malformed, "word", word)
	}
	return results, nil
}

// toEntry は訳語が1つもなければ ok=false を返します。
func toEntry(e *kaikkiEntry, targetLang model.Lang) (model.DictionaryEntry, bool) {
	var translations []model.DictionaryTranslation
	add := func(ts []kaikkiTranslation) {
		for _, t := range ts {
			if t.Word != "" && t.matches(targetLang) {
				translations = append(translations, model.DictionaryTranslation{Word: t.Word, Lang: string(targetLang)})
			}
		}
	}
	for _, s := range e.Senses {
		add(s.Translations)
	}
	add(e.Translations)
	if len(translations) == 0 {
		return model.DictionaryEntry{}, false
	}

	pos, extraTags := normalizePOS(e.POS)
	tags := append([]string{}, extraTags...)
	tags = append(tags, e.Tags...)
	for _, c := range e.Categories {
		tags = append(tags, string(c))
	}
	for _, s := range e.Senses {
		tags = append(tags, s.Tags...)
		for _, c := range s.Categories {
			tags = append(tags, string(c))
		}
	}

	return model.DictionaryEntry{
		Word:         e.Word,
		PartOfSpeech: pos,
		Translations: translations,
		GrammarTags:  tags,
	}, true
}

// normalizePOS は Wiktionary の品詞名を閉じた列挙に寄せます。
// 対応しないもの (num, article など) は元の文字列のまま返し、変換側でエラーにします。
func normalizePOS(raw string) (string, []string) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "noun", "nom":
		return string(model.PosNoun), nil
	case "name", "proper noun", "nom propre":
		return string(model.PosNoun), []string{"proper"}
	case "verb", "verbe":
		return string(model.PosVerb), nil
	case "adj", "adjective", "adjectif":
		return string(model.PosAdjective), nil
	case "adv", "adverb", "adverbe":
		return string(model.PosAdverb), nil
	case "pron", "pronoun", "pronom":
		return string(model.PosPronoun), nil
	case "prep", "preposition", "préposition":
		return string(model.PosPreposition), nil
	case "conj", "conjunction", "conjonction":
		return string(model.PosConjunction), nil
	case "intj", "interjection":
		return string(model.PosInterjection), nil
	case "phrase", "idiom", "proverb", "locution", "proverbe", "expression":
		return string(model.PosExpression), []string{strings.ToLower(raw)}
	}
	return raw, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
