package generator

const (
	DefaultImageEditModel = "gemini-2.5-flash-image"
	DefaultTextModel      = "gemini-2.5-flash"
	DefaultImageModel     = "imagen-4.0-generate-001"

	// MaxSuggestions は置き換え候補の最大件数です。
	MaxSuggestions = 3

	elementImageMimeType    = "image/png"
	elementImageAspectRatio = "1:1"
)

// Options は GeminiDesigner が使うモデル名とソース画像の前処理を指定します。
// 空のモデル名は既定値で補われます。
type Options struct {
	ImageEditModel string
	TextModel      string
	ImageModel     string
	// CompressSource が true のとき、ソース画像を JPEG に圧縮してから送信します。
	CompressSource bool
}

func (o Options) withDefaults() Options {
	if o.ImageEditModel == "" {
		o.ImageEditModel = DefaultImageEditModel
	}
	if o.TextModel == "" {
		o.TextModel = DefaultTextModel
	}
	if o.ImageModel == "" {
		o.ImageModel = DefaultImageModel
	}
	return o
}

// FallbackSuggestions は置き換え候補の取得に失敗したときに返す固定のリストです。
func FallbackSuggestions() []string {
	return []string{
		"Try searching online for ideas",
		"Consider a contrasting feature",
		"Consult a local nursery",
	}
}
