package imgutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

func TestDetectMimeType(t *testing.T) {
	t.Run("PNGを認識できること", func(t *testing.T) {
		mimeType, ok := DetectMimeType(createDummyImageData(t, "png"))
		assert.True(t, ok)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("画像でないデータは false を返すこと", func(t *testing.T) {
		_, ok := DetectMimeType([]byte("plain text"))
		assert.False(t, ok)
	})
}

func TestPrepare(t *testing.T) {
	pngData := createDummyImageData(t, "png")

	t.Run("メディアタイプが空なら推定して補うこと", func(t *testing.T) {
		got := Prepare(domain.Image{Data: pngData}, false)
		assert.Equal(t, "image/png", got.MimeType)
		assert.Equal(t, pngData, got.Data)
	})

	t.Run("指定済みのメディアタイプは維持すること", func(t *testing.T) {
		got := Prepare(domain.Image{Data: pngData, MimeType: "image/webp"}, false)
		assert.Equal(t, "image/webp", got.MimeType)
	})

	t.Run("圧縮を有効にするとJPEGになること", func(t *testing.T) {
		got := Prepare(domain.Image{Data: pngData, MimeType: "image/png"}, true)
		assert.Equal(t, "image/jpeg", got.MimeType)
		mimeType, _ := DetectMimeType(got.Data)
		assert.Equal(t, "image/jpeg", mimeType)
	})

	t.Run("圧縮に失敗したら元のデータを使うこと", func(t *testing.T) {
		src := domain.Image{Data: []byte("not an image"), MimeType: "image/png"}
		got := Prepare(src, true)
		assert.Equal(t, src, got)
	})
}

func TestDataURL(t *testing.T) {
	got := DataURL(domain.Image{Data: []byte("abc"), MimeType: "image/png"})
	assert.Equal(t, "data:image/png;base64,YWJj", got)
}
