package generator

import (
	"errors"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"google.golang.org/genai"
)

var errUnrecognizedReply = errors.New("unrecognized response shape from the model")

// Reply は上流の応答を固定の形に写し取ったものです。1 回の呼び出しの間だけ存在します。
type Reply struct {
	BlockReason        string
	BlockReasonMessage string
	Candidates         []ReplyCandidate
}

// ReplyCandidate は応答候補 1 件分のパーツ列です。
type ReplyCandidate struct {
	Parts []ReplyPart
}

// ReplyPart は画像かテキストのどちらかを持つパーツです。
type ReplyPart struct {
	Image *domain.Image
	Text  string
}

// NewReply は SDK の応答を Reply に変換します。
// 解釈できない形 (nil の応答) は KindUpstreamUnknown として失敗します。
func NewReply(resp *genai.GenerateContentResponse) (*Reply, error) {
	if resp == nil {
		return nil, errUpstream(errUnrecognizedReply)
	}

	r := &Reply{}
	if fb := resp.PromptFeedback; fb != nil {
		r.BlockReason = string(fb.BlockReason)
		r.BlockReasonMessage = fb.BlockReasonMessage
	}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		var rc ReplyCandidate
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				if p == nil {
					continue
				}
				switch {
				// 中身が空の画像パーツは画像として数えない。
				case p.InlineData != nil && len(p.InlineData.Data) > 0:
					rc.Parts = append(rc.Parts, ReplyPart{Image: &domain.Image{
						Data:     p.InlineData.Data,
						MimeType: p.InlineData.MIMEType,
					}})
				case p.Text != "":
					rc.Parts = append(rc.Parts, ReplyPart{Text: p.Text})
				}
			}
		}
		r.Candidates = append(r.Candidates, rc)
	}
	return r, nil
}
