package generator

import (
	"errors"
	"fmt"
)

// ErrorPrefix は呼び出し元に見えるすべてのエラーメッセージの先頭に付きます。
const ErrorPrefix = "Gemini API error: "

// ErrorKind は外部に公開する失敗の種類です。閉じた集合として扱います。
// カタログが得られないことは失敗ではないため、ここには含めません。
type ErrorKind int

const (
	KindUpstreamUnknown ErrorKind = iota
	KindContentBlocked
	KindNoCandidates
	KindNoImageReturned
	KindNoRefinedImageReturned
)

func (k ErrorKind) String() string {
	switch k {
	case KindContentBlocked:
		return "ContentBlocked"
	case KindNoCandidates:
		return "NoCandidates"
	case KindNoImageReturned:
		return "NoImageReturned"
	case KindNoRefinedImageReturned:
		return "NoRefinedImageReturned"
	default:
		return "UpstreamUnknown"
	}
}

const defaultBlockMessage = "No additional details provided."

// GenerationError は生成処理の失敗を表す唯一の公開エラー型です。
type GenerationError struct {
	Kind ErrorKind
	// Reason と BlockMessage は KindContentBlocked のときのみ設定されます。
	Reason       string
	BlockMessage string
	// Err は KindUpstreamUnknown の元になったエラーです。
	Err error

	msg string
}

func (e *GenerationError) Error() string {
	return ErrorPrefix + e.msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func errContentBlocked(reason, message string) *GenerationError {
	if message == "" {
		message = defaultBlockMessage
	}
	return &GenerationError{
		Kind:         KindContentBlocked,
		Reason:       reason,
		BlockMessage: message,
		msg:          fmt.Sprintf("Request blocked by AI safety filters: %s. Please modify the image or request.", reason),
	}
}

func errNoCandidates() *GenerationError {
	return &GenerationError{
		Kind: KindNoCandidates,
		msg:  "The model returned no content. This could be due to a safety policy or an unknown model error.",
	}
}

func errNoImage(msg string) *GenerationError {
	return &GenerationError{Kind: KindNoImageReturned, msg: msg}
}

func errNoRefinedImage() *GenerationError {
	return &GenerationError{Kind: KindNoRefinedImageReturned, msg: "The model did not return a refined image."}
}

func errUpstream(err error) *GenerationError {
	if err == nil {
		return &GenerationError{
			Kind: KindUpstreamUnknown,
			msg:  "An unknown error occurred while communicating with the Gemini API.",
		}
	}
	return &GenerationError{Kind: KindUpstreamUnknown, Err: err, msg: err.Error()}
}

// Translate はあらゆる失敗を *GenerationError に正規化します。
// すでに型付きのエラーはそのまま返し、それ以外は KindUpstreamUnknown として元のメッセージを保持します。
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return errUpstream(err)
}

// KindOf は err の種類を返します。*GenerationError でなければ KindUpstreamUnknown です。
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindUpstreamUnknown
}
