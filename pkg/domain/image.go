package domain

// Image はエンコード済みの画像バイト列とそのメディアタイプです。
// 入力のソース画像と、生成された画像の両方をこの型で扱います。
type Image struct {
	Data     []byte
	MimeType string
}

// IsEmpty は画像データを持たない場合に true を返します。
func (i Image) IsEmpty() bool {
	return len(i.Data) == 0
}

// GeneratedResult は 1 回の再デザイン呼び出しの成果物です。所有権は呼び出し元に移ります。
type GeneratedResult struct {
	Image   Image
	Catalog DesignCatalog
}
