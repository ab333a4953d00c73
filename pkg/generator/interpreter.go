package generator

import (
	"log/slog"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

// Interpretation は再デザイン応答から取り出した画像と連結済みテキストです。
type Interpretation struct {
	Image domain.Image
	Text  string
}

// Interpret は再デザイン応答を検証し、画像とテキストを取り出します。
// 判定は次の順で行い、最初に該当したもので終了します。
//
//   - ブロック理由あり: KindContentBlocked
//   - 候補なし: KindNoCandidates
//   - 最初の候補に画像パーツなし: KindNoImageReturned
//
// 画像は最初に現れたものを採用し、以降の画像パーツは捨てます。
// テキストパーツはすべて順番どおり区切りなしで連結します。
func Interpret(r *Reply) (*Interpretation, error) {
	candidate, err := firstCandidate(r)
	if err != nil {
		return nil, err
	}

	var image *domain.Image
	for _, part := range candidate.Parts {
		if part.Image != nil {
			image = part.Image
			break
		}
	}
	text := candidateText(candidate)

	if image == nil {
		slog.Error("モデルの応答に画像パーツがありませんでした", "parts", len(candidate.Parts), "text", text)
		return nil, errNoImage("The model did not return a redesigned image.")
	}
	return &Interpretation{Image: *image, Text: text}, nil
}

// InterpretRefinement は修正応答から画像だけを取り出します。テキストパーツは無視します。
func InterpretRefinement(r *Reply) (domain.Image, error) {
	candidate, err := firstCandidate(r)
	if err != nil {
		return domain.Image{}, err
	}

	for _, part := range candidate.Parts {
		if part.Image != nil {
			return *part.Image, nil
		}
	}

	slog.Error("修正応答に画像パーツがありませんでした", "parts", len(candidate.Parts))
	return domain.Image{}, errNoRefinedImage()
}

// firstCandidate はブロック判定と候補の有無を確認し、最初の候補を返します。
func firstCandidate(r *Reply) (ReplyCandidate, error) {
	if r == nil {
		return ReplyCandidate{}, errUpstream(errUnrecognizedReply)
	}
	if r.BlockReason != "" {
		slog.Error("Gemini API のリクエストがブロックされました", "reason", r.BlockReason, "message", r.BlockReasonMessage)
		return ReplyCandidate{}, errContentBlocked(r.BlockReason, r.BlockReasonMessage)
	}
	if len(r.Candidates) == 0 {
		slog.Error("モデルの応答に候補がありませんでした")
		return ReplyCandidate{}, errNoCandidates()
	}
	return r.Candidates[0], nil
}
