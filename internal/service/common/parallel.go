package common

import (
	"sync"
)

// ParallelExecutor は並列処理を管理する構造体
type ParallelExecutor struct {
	maxWorkers int
	wg         sync.WaitGroup
	semaphore  chan struct{}
}

// NewParallelExecutor は新しいParallelExecutorを作成
func NewParallelExecutor(maxWorkers int) *ParallelExecutor {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &ParallelExecutor{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
	}
}

// Execute はタスクを並列で実行
func (p *ParallelExecutor) Execute(task func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.semaphore <- struct{}{}        // セマフォ取得（同時実行数制限）
		defer func() { <-p.semaphore }() // セマフォ解放
		task()
	}()
}

// Wait はすべてのタスクの完了を待つ
func (p *ParallelExecutor) Wait() {
	p.wg.Wait()
}

// ProcessAll は items を最大 maxWorkers 並列で処理し、入力と同じ順序で結果を返す
// 各タスクは自分の添字にだけ書き込むのでロックは不要
func ProcessAll[T any](maxWorkers int, items []T, fn func(T) Result) []Result {
	results := make([]Result, len(items))
	executor := NewParallelExecutor(maxWorkers)
	for i, item := range items {
		executor.Execute(func() {
			results[i] = fn(item)
		})
	}
	executor.Wait()
	return results
}
