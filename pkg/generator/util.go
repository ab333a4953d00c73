package generator

import (
	"strings"

	"google.golang.org/genai"
)

var (
	// 再デザインは画像とカタログ用テキストの両方を要求する。
	redesignModalities = []string{string(genai.ModalityImage), string(genai.ModalityText)}
	// 修正プロンプトは画像のみを要求するので、設定もそれに合わせる。
	refinementModalities = []string{string(genai.ModalityImage)}
)

// suggestionSchema は置き換え候補の応答スキーマ {suggestions: [string]} です。
func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"suggestions"},
	}
}

// userContent は単一のユーザーターンを組み立てます。
func userContent(parts ...*genai.Part) []*genai.Content {
	return []*genai.Content{{Role: "user", Parts: parts}}
}

// candidateText は候補内のテキストパーツを順に連結します。
func candidateText(c ReplyCandidate) string {
	var b strings.Builder
	for _, p := range c.Parts {
		if p.Image == nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
