package model

// DictionaryTranslation は辞書エントリ中の訳語候補です。
type DictionaryTranslation struct {
	Word string `json:"word"`
	Lang string `json:"lang"`
}

// DictionaryEntry はオフライン辞書の検索結果一件です。
// PartOfSpeech は正規化済み (noun, verb, adjective ...)。正規化できない場合は元の文字列。
type DictionaryEntry struct {
	Word         string
	PartOfSpeech string
	Translations []DictionaryTranslation
	GrammarTags  []string
}
