package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

// SuggestionPrompt は置き換え候補を 3 件求めるプロンプトを返します。
func SuggestionPrompt(elementName string, styles []string, climateZone string) string {
	names := domain.StyleNames(styles)

	var styleInstruction string
	switch len(names) {
	case 0:
		styleInstruction = "in a landscape"
	case 1:
		styleInstruction = fmt.Sprintf("in a %q style landscape", names[0])
	default:
		styleInstruction = fmt.Sprintf(`in a landscape that blends these styles: "%s"`, strings.Join(names, `", "`))
	}

	climateInstruction := ""
	if climateZone != "" {
		climateInstruction = fmt.Sprintf(" The suggestions must be suitable for the '%s' climate/region.", climateZone)
	}

	return fmt.Sprintf(`Provide exactly 3 creative and suitable replacements for a "%s" %s.%s The suggestions should be concise, like "Japanese Maple Tree" or "Stone Bird Bath".`,
		elementName, styleInstruction, climateInstruction)
}

// ElementImagePrompt はカタログ用に要素単体の画像を求めるプロンプトです。
func ElementImagePrompt(elementName string) string {
	return fmt.Sprintf(`Photorealistic image of a single "%s" isolated on a clean, plain white background. The subject should be centered and clear, like a product photo for a catalog. No text, watermarks, or other objects.`, elementName)
}

// ElementInfoPrompt は要素の説明文を 1 段落で求めるプロンプトです。
func ElementInfoPrompt(elementName string) string {
	return fmt.Sprintf(`Provide a brief, user-friendly description for a "%s" for a homeowner's landscape design catalog. Include its typical size, ideal conditions (sun, water), and one interesting fact or design tip. Format the response as a single, concise paragraph.`, elementName)
}
