package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

const (
	minQuality = 1
	maxQuality = 100
)

// CompressToJPEG は image.Decode が読める画像を JPEG に再エンコードします。
// quality は 1..100 に丸めます。透過部分は白で塗りつぶします。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imgutil: decode source image: %w", err)
	}

	var out bytes.Buffer
	opts := &jpeg.Options{Quality: clampQuality(quality)}
	if err := jpeg.Encode(&out, flatten(src), opts); err != nil {
		return nil, fmt.Errorf("imgutil: encode %s as jpeg: %w", format, err)
	}
	return out.Bytes(), nil
}

func clampQuality(q int) int {
	switch {
	case q < minQuality:
		return minQuality
	case q > maxQuality:
		return maxQuality
	}
	return q
}

// flatten は不透明な画像はそのまま返し、それ以外は白背景に合成します。
func flatten(src image.Image) image.Image {
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return src
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Over)
	return dst
}
