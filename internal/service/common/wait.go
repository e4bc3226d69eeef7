package common

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// PollOptions は状態遷移をポーリングで待つときの設定
type PollOptions struct {
	Interval    time.Duration // 初回の待ち時間
	MaxInterval time.Duration // 待ち時間の上限（0なら Interval の8倍）
	Timeout     time.Duration // 全体の上限時間
}

// PollUntil は condition が true を返すまで指数バックオフで呼び出す
// Timeout を過ぎた場合は ErrWaitTimeout を包んだエラーを返す
func PollUntil(ctx context.Context, opts PollOptions, condition func(ctx context.Context) (bool, error)) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("ポーリング間隔は0より大きくしてください: %s", opts.Interval)
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("待機の上限時間は0より大きくしてください: %s", opts.Timeout)
	}
	maxInterval := opts.MaxInterval
	if maxInterval <= 0 {
		maxInterval = opts.Interval * 8
	}

	pollCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	backoff := wait.Backoff{
		Duration: opts.Interval,
		Factor:   2,
		Jitter:   0.1,
		Steps:    math.MaxInt32,
		Cap:      maxInterval,
	}
	// 上限間隔に達した後も Timeout まで同じ間隔で続ける
	err := backoff.DelayFunc().Until(pollCtx, true, false, condition)
	if err == nil {
		return nil
	}
	// 呼び出し元のキャンセルはタイムアウトとして扱わない
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) || wait.Interrupted(err) {
		return fmt.Errorf("%w after %s", ErrWaitTimeout, opts.Timeout)
	}
	return err
}

// Sleep は d だけ待つ。ctx がキャンセルされたら即座に戻る
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pause は d だけ待つ。進捗表示が有効なら1秒ごとにバーを進める
func (r *Reporter) Pause(ctx context.Context, d time.Duration, description string) error {
	seconds := int(d / time.Second)
	if !r.progress || seconds < 1 {
		return Sleep(ctx, d)
	}

	bar := r.progressBar(seconds, description)
	for range seconds {
		if err := Sleep(ctx, time.Second); err != nil {
			_ = bar.Exit()
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	// 端数
	return Sleep(ctx, d%time.Second)
}
