package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"github.com/shouni/gemini-landscape-kit/pkg/imgutil"
	"github.com/shouni/gemini-landscape-kit/pkg/prompt"

	"google.golang.org/genai"
)

// GenerationClient は 1 回の操作につき 1 回だけ上流へマルチモーダルリクエストを送ります。
// リトライやキャッシュは行いません。呼び出し間で共有する可変状態を持たないため、並行利用できます。
type GenerationClient struct {
	aiClient       GenerativeModel
	model          string
	compressSource bool
}

// NewGenerationClient は依存関係を注入して GenerationClient を初期化します。
func NewGenerationClient(aiClient GenerativeModel, model string, compressSource bool) (*GenerationClient, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &GenerationClient{
		aiClient:       aiClient,
		model:          model,
		compressSource: compressSource,
	}, nil
}

// Generate は再デザインのリクエストを画像とテキストの両モダリティで送信します。
func (c *GenerationClient) Generate(ctx context.Context, cfg domain.RedesignConfiguration, src domain.Image) (*Reply, error) {
	return c.execute(ctx, src, prompt.ComposeRedesignPrompt(cfg), redesignModalities)
}

// GenerateRefinement は修正リクエストを画像のみのモダリティで送信します。
func (c *GenerationClient) GenerateRefinement(ctx context.Context, src domain.Image, mods domain.RefinementModifications) (*Reply, error) {
	return c.execute(ctx, src, prompt.ComposeRefinementPrompt(mods), refinementModalities)
}

// execute はパーツを [画像, プロンプト] の順で組み立てて送信し、応答を Reply に変換します。
func (c *GenerationClient) execute(ctx context.Context, src domain.Image, text string, modalities []string) (*Reply, error) {
	parts := []*genai.Part{
		c.toPart(src),
		{Text: text},
	}

	resp, err := c.aiClient.GenerateContent(ctx, c.model, userContent(parts...), &genai.GenerateContentConfig{
		ResponseModalities: modalities,
	})
	if err != nil {
		return nil, err // ラップは呼び出し元で行う
	}
	return NewReply(resp)
}

func (c *GenerationClient) toPart(src domain.Image) *genai.Part {
	img := imgutil.Prepare(src, c.compressSource)
	return &genai.Part{InlineData: &genai.Blob{MIMEType: img.MimeType, Data: img.Data}}
}
