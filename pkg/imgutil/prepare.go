package imgutil

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

const compressionQuality = 75

// DetectMimeType はバイト列から画像のメディアタイプを推定します。
// 画像として認識できない場合は false を返します。
func DetectMimeType(data []byte) (string, bool) {
	mimeType := http.DetectContentType(data)
	return mimeType, strings.HasPrefix(mimeType, "image/")
}

// Prepare は送信前のソース画像を整えます。
// メディアタイプが空なら推定し、compress が true なら JPEG へ圧縮します。
// 圧縮に失敗した場合は元の画像を使います。
func Prepare(img domain.Image, compress bool) domain.Image {
	out := img
	if out.MimeType == "" {
		out.MimeType, _ = DetectMimeType(out.Data)
	}
	if !compress {
		return out
	}
	if compressed, err := CompressToJPEG(out.Data, compressionQuality); err == nil {
		out.Data = compressed
		out.MimeType = "image/jpeg"
	}
	return out
}

// DataURL は画像を data URL 形式の文字列にします。
func DataURL(img domain.Image) string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
