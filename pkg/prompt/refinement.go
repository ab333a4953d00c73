package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

// NoChangeRefinementPrompt は修正指示が空のときに送る固定プロンプトです。
// 画像のみを変更せずに返すよう要求します。
const NoChangeRefinementPrompt = "You are an AI assistant. The user wants to refine an image but provided no specific instructions. Your task is to return the original image completely unchanged. Your response MUST contain ONLY a single image part. DO NOT output any text."

const refinementPreamble = `
You are an AI assistant for refining an existing landscape design. Your ONLY task is to generate a new image based on the instructions below.

**CRITICAL INSTRUCTION:** You MUST preserve the overall style, lighting, and unmentioned elements of the original design image. Your changes must be localized to the specified modifications only. This is the most important rule.

**INPUT EXPLANATION:**
Your input will contain a single image (the existing design) followed by this text prompt.

**OUTPUT REQUIREMENTS:**
Your response MUST contain ONLY a single photorealistic image part. DO NOT output any text, JSON, or markdown.

**REFINEMENT TASKS:**
`

// ComposeRefinementPrompt は修正用のプロンプトを組み立てます。
// 箇条書きは削除、置換、追加の順で、空のカテゴリは出力しません。
func ComposeRefinementPrompt(mods domain.RefinementModifications) string {
	if mods.IsEmpty() {
		return NoChangeRefinementPrompt
	}

	var tasks []string
	if len(mods.Deletions) > 0 {
		tasks = append(tasks, fmt.Sprintf("**Deletions:** You MUST completely remove the following elements from the image: %s.",
			strings.Join(mods.Deletions, ", ")))
	}
	if len(mods.Replacements) > 0 {
		pairs := make([]string, 0, len(mods.Replacements))
		for _, r := range mods.Replacements {
			pairs = append(pairs, fmt.Sprintf("'%s' with '%s'", r.From, r.To))
		}
		tasks = append(tasks, fmt.Sprintf("**Replacements:** You MUST replace the following elements: %s.",
			strings.Join(pairs, "; ")))
	}
	if len(mods.Additions) > 0 {
		tasks = append(tasks, fmt.Sprintf("**Additions:** You MUST incorporate the following new elements into the design: %s.",
			strings.Join(mods.Additions, ", ")))
	}

	return refinementPreamble + "- " + strings.Join(tasks, "\n- ") + "\n"
}
