package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/catalog"
	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"github.com/shouni/gemini-landscape-kit/pkg/prompt"

	"google.golang.org/genai"
)

// GeminiDesigner は再デザイン、修正、および要素単位の補助操作をまとめた統合サービスです。
type GeminiDesigner struct {
	client     *GenerationClient
	aiClient   GenerativeModel
	textModel  string
	imageModel string
}

// NewGeminiDesigner は GeminiDesigner を初期化します。
func NewGeminiDesigner(aiClient GenerativeModel, opts Options) (*GeminiDesigner, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (GenerativeModel) is required")
	}
	opts = opts.withDefaults()

	client, err := NewGenerationClient(aiClient, opts.ImageEditModel, opts.CompressSource)
	if err != nil {
		return nil, err
	}

	return &GeminiDesigner{
		client:     client,
		aiClient:   aiClient,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
	}, nil
}

// Redesign はソース画像を設定どおりに再デザインします。
// カタログが取り出せない場合は失敗にせず、空のカタログを返します。
func (d *GeminiDesigner) Redesign(ctx context.Context, cfg domain.RedesignConfiguration, src domain.Image) (*domain.GeneratedResult, error) {
	slog.InfoContext(ctx, "再デザインをリクエストします",
		"styles", cfg.Styles, "structural", cfg.AllowStructuralChanges, "density", cfg.Density.Normalize())

	reply, err := d.client.Generate(ctx, cfg, src)
	if err != nil {
		return nil, d.fail(ctx, "redesign", err)
	}

	out, err := Interpret(reply)
	if err != nil {
		return nil, d.fail(ctx, "redesign", err)
	}

	designCatalog, ok := catalog.Parse(out.Text)
	if !ok {
		slog.InfoContext(ctx, "カタログを取得できなかったため空のカタログを返します")
		designCatalog = domain.EmptyCatalog()
	}

	return &domain.GeneratedResult{
		Image:   out.Image,
		Catalog: designCatalog.Normalize(),
	}, nil
}

// Refine は既存デザインに修正指示を適用します。
// 指示が空の場合も上流へ 1 回だけ送信し、画像をそのまま返すよう求めます。
func (d *GeminiDesigner) Refine(ctx context.Context, src domain.Image, mods domain.RefinementModifications) (*domain.Image, error) {
	slog.InfoContext(ctx, "修正をリクエストします",
		"deletions", len(mods.Deletions), "replacements", len(mods.Replacements), "additions", len(mods.Additions))

	reply, err := d.client.GenerateRefinement(ctx, src, mods)
	if err != nil {
		return nil, d.fail(ctx, "refine", err)
	}

	img, err := InterpretRefinement(reply)
	if err != nil {
		return nil, d.fail(ctx, "refine", err)
	}
	return &img, nil
}

// ReplacementSuggestions は要素の置き換え候補を最大 3 件返します。
// どのような失敗でも FallbackSuggestions を返し、エラーは伝播しません。
func (d *GeminiDesigner) ReplacementSuggestions(ctx context.Context, elementName string, styles []string, climateZone string) []string {
	suggestions, err := d.fetchSuggestions(ctx, elementName, styles, climateZone)
	if err != nil {
		slog.WarnContext(ctx, "置き換え候補の取得に失敗しました。代替リストを返します", "element", elementName, "error", err)
		return FallbackSuggestions()
	}
	return suggestions
}

func (d *GeminiDesigner) fetchSuggestions(ctx context.Context, elementName string, styles []string, climateZone string) ([]string, error) {
	resp, err := d.aiClient.GenerateContent(ctx, d.textModel,
		userContent(&genai.Part{Text: prompt.SuggestionPrompt(elementName, styles, climateZone)}),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema(),
		},
	)
	if err != nil {
		return nil, err
	}

	reply, err := NewReply(resp)
	if err != nil {
		return nil, err
	}
	candidate, err := firstCandidate(reply)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidateText(candidate))), &parsed); err != nil {
		return nil, fmt.Errorf("置き換え候補のJSON解析に失敗しました: %w", err)
	}
	if parsed.Suggestions == nil {
		return []string{}, nil
	}
	if len(parsed.Suggestions) > MaxSuggestions {
		return parsed.Suggestions[:MaxSuggestions], nil
	}
	return parsed.Suggestions, nil
}

// ElementImage は要素単体の画像を白背景で 1 枚生成します。画像が返らなければ失敗します。
func (d *GeminiDesigner) ElementImage(ctx context.Context, elementName string) (*domain.Image, error) {
	resp, err := d.aiClient.GenerateImages(ctx, d.imageModel, prompt.ElementImagePrompt(elementName), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: elementImageMimeType,
		AspectRatio:    elementImageAspectRatio,
	})
	if err != nil {
		return nil, d.fail(ctx, "element_image", fmt.Errorf("failed to generate image for %s: %w", elementName, err))
	}

	if resp == nil || len(resp.GeneratedImages) == 0 ||
		resp.GeneratedImages[0] == nil || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, d.fail(ctx, "element_image", errNoImage("Image generation failed to return an image."))
	}

	generated := resp.GeneratedImages[0].Image
	mimeType := generated.MIMEType
	if mimeType == "" {
		mimeType = elementImageMimeType
	}
	return &domain.Image{Data: generated.ImageBytes, MimeType: mimeType}, nil
}

var errEmptyDescription = errors.New("the model returned an empty description")

// ElementInfo は要素の説明文を 1 段落で返します。
func (d *GeminiDesigner) ElementInfo(ctx context.Context, elementName string) (string, error) {
	resp, err := d.aiClient.GenerateContent(ctx, d.textModel,
		userContent(&genai.Part{Text: prompt.ElementInfoPrompt(elementName)}), nil)
	if err != nil {
		return "", d.fail(ctx, "element_info", fmt.Errorf("failed to get information for %s: %w", elementName, err))
	}

	reply, err := NewReply(resp)
	if err != nil {
		return "", d.fail(ctx, "element_info", err)
	}
	candidate, err := firstCandidate(reply)
	if err != nil {
		return "", d.fail(ctx, "element_info", err)
	}

	text := strings.TrimSpace(candidateText(candidate))
	if text == "" {
		return "", d.fail(ctx, "element_info", fmt.Errorf("failed to get information for %s: %w", elementName, errEmptyDescription))
	}
	return text, nil
}

// fail はエラーを記録し、公開用の型に正規化します。握りつぶしはしません。
func (d *GeminiDesigner) fail(ctx context.Context, op string, err error) error {
	translated := Translate(err)
	slog.ErrorContext(ctx, "Gemini API の呼び出しに失敗しました", "op", op, "kind", KindOf(translated).String(), "error", err)
	return translated
}
