package common

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/smithy-go"
	"k8s.io/apimachinery/pkg/util/wait"
)

// エラーメッセージフォーマット定数
const (
	ListErrorFormat   = "Could not list %ss: %v"
	FailedFormat      = "Could not %s %s %s: %v"
	AlreadyGoneFormat = "%s %s already deleted."
	NotOwnedFormat    = "Cannot %s %s %s, not owned or managed: %v"
	BlockedFormat     = "%s %s still has dependencies: %v"
)

// ErrWaitTimeout は状態遷移の待機が上限時間内に終わらなかったことを表す
var ErrWaitTimeout = errors.New("wait timed out")

// ErrorKind はプロバイダのエラーを分類した種別
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindNotOwned
	KindDependency
	KindTimeout
	KindCanceled
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindNotOwned:
		return "not-owned"
	case KindDependency:
		return "dependency"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ".NotFound" で終わらない「存在しない」系のコード
var notFoundCodes = map[string]struct{}{
	"NatGatewayNotFound":   {},
	"LoadBalancerNotFound": {},
	"Gateway.NotAttached":  {},
}

var notOwnedCodes = map[string]struct{}{
	"AuthFailure":             {},
	"UnauthorizedOperation":   {},
	"InvalidAddress.NotOwned": {},
}

var dependencyCodes = map[string]struct{}{
	"DependencyViolation":    {},
	"InvalidIPAddress.InUse": {},
	"ResourceInUse":          {},
}

// ErrorCode はSDKのAPIエラーからエラーコードを取り出す（APIエラーでなければ空文字）
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// ClassifyError はエラーを ErrorKind に分類する
// メッセージ文字列ではなくエラーコードで判定する
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrWaitTimeout) || errors.Is(err, context.DeadlineExceeded) || wait.Interrupted(err) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	code := ErrorCode(err)
	if code == "" {
		return KindUnknown
	}
	if strings.HasSuffix(code, ".NotFound") {
		return KindNotFound
	}
	if _, ok := notFoundCodes[code]; ok {
		return KindNotFound
	}
	if _, ok := notOwnedCodes[code]; ok {
		return KindNotOwned
	}
	if _, ok := dependencyCodes[code]; ok {
		return KindDependency
	}
	return KindUnknown
}

// IsNotFound はリソースがすでに存在しないことを表すエラーか判定する
func IsNotFound(err error) bool {
	return ClassifyError(err) == KindNotFound
}

// OutcomeOf は削除呼び出しのエラーを結果種別に変換する
func OutcomeOf(err error) Outcome {
	switch ClassifyError(err) {
	case KindNone:
		return OutcomeDeleted
	case KindNotFound, KindNotOwned:
		return OutcomeSkipped
	case KindDependency:
		return OutcomeBlocked
	default:
		return OutcomeFailed
	}
}
