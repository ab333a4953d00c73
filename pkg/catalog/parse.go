package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

// モデルは JSON を ```json ... ``` で囲んで返すことがある。
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// Parse はモデルの応答テキストからデザインカタログを取り出します。
//
// 1. ```json で始まるフェンスブロックがあればその中身を解析します。
// 2. なければ最初の '{' から最後の '}' までを解析します。
// 3. どちらも見つからなければ、カタログなしとして false を返します。
//
// 構文エラーの場合だけエラーにはせず false を返します。形の検証は行わず、
// 型の合わないリストはそのリストだけを捨てて残りを返します。
func Parse(text string) (domain.DesignCatalog, bool) {
	candidate, ok := locate(text)
	if !ok {
		return domain.DesignCatalog{}, false
	}

	var raw struct {
		Plants   json.RawMessage `json:"plants"`
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			slog.Warn("モデル応答のJSON解析に失敗しました", "error", err, "text", text)
			return domain.DesignCatalog{}, false
		}
		// オブジェクト以外の値は構文として正しいので、空のカタログとして扱う。
		slog.Warn("カタログがオブジェクトではありません", "type", typeErr.Value)
		return domain.DesignCatalog{}, true
	}

	var c domain.DesignCatalog
	decodeList(raw.Plants, &c.Plants, "plants")
	decodeList(raw.Features, &c.Features, "features")
	return c, true
}

// decodeList は型が合わなければ dst を nil のままにします。
func decodeList[T any](data json.RawMessage, dst *[]T, field string) {
	if len(data) == 0 {
		return
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		slog.Warn("カタログの項目を読み飛ばしました", "field", field, "error", err)
		return
	}
	*dst = list
}

func locate(text string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil && m[1] != "" {
		return m[1], true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
