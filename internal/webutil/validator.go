package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"word":       "単語",
	"galaxy":     "ギャラクシー",
	"subtopic":   "サブトピック",
	"source":     "原文",
	"target":     "訳語",
	"sourceLang": "翻訳元言語",
	"targetLang": "翻訳先言語",
	"lexiconId":  "単語ID",
	"input":      "入力語",
	"examples":   "例文",
	"status":     "復習状態",
}

func displayName(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する。タグがなければフィールド名を小文字始まりで使う
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name[:1]) + fld.Name[1:]
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// タグごとのメッセージを上書き ({0}=項目名, {1}=パラメータ)
	override := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, displayName(fe), fe.Param())
			return t
		})
	}
	override("required", "{0}は必須項目です。")
	override("min", "{0}は{1}以上で入力してください。")
	override("max", "{0}は{1}以下で入力してください。")
	override("oneof", "{0}は次のいずれかである必要があります: {1}")
	override("nefield", "{0}は{1}と異なる値にしてください。")
}
