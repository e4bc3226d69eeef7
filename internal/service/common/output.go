package common

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/schollz/progressbar/v3"
)

// Tag は進捗行の先頭に付くタグ
type Tag string

const (
	TagStart   Tag = "START"
	TagInfo    Tag = "INFO"
	TagDelete  Tag = "DELETE"
	TagSkip    Tag = "SKIP"
	TagWarn    Tag = "WARN"
	TagError   Tag = "ERROR"
	TagSuccess Tag = "SUCCESS"
	TagBlocked Tag = "BLOCKED"
	TagWait    Tag = "WAIT"
	TagDone    Tag = "DONE"
	TagFinal   Tag = "FINAL"
)

var tagColors = map[Tag]string{
	TagStart:   "81",
	TagInfo:    "245",
	TagDelete:  "214",
	TagSkip:    "240",
	TagWarn:    "220",
	TagError:   "196",
	TagSuccess: "82",
	TagBlocked: "201",
	TagWait:    "245",
	TagDone:    "82",
	TagFinal:   "81",
}

// Reporter はタグ付きの進捗行を出力する
// 複数goroutineから呼ばれても1行単位で出力される
type Reporter struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	progress bool
}

// ReporterOption はReporterの設定関数
type ReporterOption func(*Reporter)

// WithProgress は待機中のプログレスバー表示を有効にする
func WithProgress(enabled bool) ReporterOption {
	return func(r *Reporter) {
		r.progress = enabled
	}
}

// NewReporter は出力先を指定してReporterを作成する
func NewReporter(w io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Printf はタグ付きで1行出力する
func (r *Reporter) Printf(tag Tag, format string, args ...any) {
	label := r.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(tagColors[tag])).
		Render("[" + string(tag) + "]")

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s %s\n", label, fmt.Sprintf(format, args...))
}

// Println はタグなしで1行出力する
func (r *Reporter) Println(args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, args...)
}

// progressBar は秒数ぶんの待機を表示するプログレスバーを返す
func (r *Reporter) progressBar(seconds int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(seconds,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// PrintTable はテーブル形式でデータを表示する
// 列幅は全角文字を考慮して計算する
func PrintTable(w io.Writer, title string, columns []TableColumn, data [][]string) {
	if title != "" {
		fmt.Fprintf(w, "\n%s:\n", title)
	}

	// 各列の最大幅を計算（ヘッダーとデータの中で最大値を取得）
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = max(col.Width, runewidth.StringWidth(col.Header))
	}
	for _, row := range data {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
			}
		}
	}

	// ヘッダー表示
	for i, col := range columns {
		fmt.Fprintf(w, "%s ", runewidth.FillRight(col.Header, colWidths[i]))
	}
	fmt.Fprintln(w)

	// 区切り線
	for i := range columns {
		fmt.Fprintf(w, "%s ", strings.Repeat("-", colWidths[i]))
	}
	fmt.Fprintln(w)

	// データ行
	for _, row := range data {
		for i, cell := range row {
			if i < len(columns) {
				fmt.Fprintf(w, "%s ", runewidth.FillRight(cell, colWidths[i]))
			}
		}
		fmt.Fprintln(w)
	}
}

// PrintSummary は実行結果の件数と、削除されなかったリソースの一覧を表示する
func (r *Reporter) PrintSummary(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "\n📋 結果: 削除 %d件 / スキップ %d件 / ブロック %d件 / 失敗 %d件\n",
		report.Count(OutcomeDeleted),
		report.Count(OutcomeSkipped),
		report.Count(OutcomeBlocked),
		report.Count(OutcomeFailed),
	)

	var data [][]string
	for _, res := range report.Results {
		if res.Outcome == OutcomeDeleted {
			continue
		}
		data = append(data, []string{res.Resource, res.ID, string(res.Outcome), res.Reason})
	}
	if len(data) == 0 {
		return
	}

	columns := []TableColumn{
		{Header: "リソース種別"},
		{Header: "ID"},
		{Header: "結果"},
		{Header: "理由"},
	}
	PrintTable(r.w, "削除されなかったリソース", columns, data)
}

// Table はReporterの出力先にテーブルを表示する
func (r *Reporter) Table(title string, columns []TableColumn, data [][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	PrintTable(r.w, title, columns, data)
}
