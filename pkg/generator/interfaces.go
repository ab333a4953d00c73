package generator

import (
	"context"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"google.golang.org/genai"
)

// GenerativeModel は上流の生成モデルサービスへの呼び出しを抽象化します。
// genai.Client の Models フィールドがこのインターフェースを満たします。
type GenerativeModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// Designer はビジネスロジック層が利用する統合窓口です。
type Designer interface {
	// Redesign は設定とソース画像から新しいデザイン画像とカタログを生成します。
	Redesign(ctx context.Context, cfg domain.RedesignConfiguration, src domain.Image) (*domain.GeneratedResult, error)
	// Refine は既存デザインに修正指示を適用した画像を返します。カタログは更新しません。
	Refine(ctx context.Context, src domain.Image, mods domain.RefinementModifications) (*domain.Image, error)
	// ReplacementSuggestions は失敗しても固定の代替リストを返します。
	ReplacementSuggestions(ctx context.Context, elementName string, styles []string, climateZone string) []string
	ElementImage(ctx context.Context, elementName string) (*domain.Image, error)
	ElementInfo(ctx context.Context, elementName string) (string, error)
}
