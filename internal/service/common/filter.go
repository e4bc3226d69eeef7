package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher はコンパイル済みのパターン
type Matcher struct {
	pattern string
	g       glob.Glob
}

// CompilePattern はパターンを事前にコンパイルする
// ワイルドカードを含む場合はglob形式、含まない場合は部分一致で判定する
// 不正なglobはエラーを返す
func CompilePattern(pattern string) (*Matcher, error) {
	m := &Matcher{pattern: pattern}
	if strings.ContainsAny(pattern, "*?[") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		m.g = g
	}
	return m, nil
}

// Match は名前がパターンに一致するか判定する
func (m *Matcher) Match(name string) bool {
	if m.g != nil {
		return m.g.Match(name)
	}
	return strings.Contains(name, m.pattern)
}

// String は元のパターン文字列を返す
func (m *Matcher) String() string {
	return m.pattern
}
