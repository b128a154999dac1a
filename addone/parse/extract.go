package parse

import (
	"regexp"
	"strings"
)

// FieldPattern 一条字段提取规则（字段名 + 预编译正则）
// 各平台的规则表是纯数据结构，按声明顺序依次尝试，便于逐条测试
type FieldPattern struct {
	Field   string
	Pattern *regexp.Regexp
}

var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// CleanOutput 清洗回显：去 ANSI 转义、统一换行、去行尾空白
func CleanOutput(output string) string {
	if output == "" {
		return ""
	}
	cleaned := ansiEscape.ReplaceAllString(output, "")
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	lines := strings.Split(cleaned, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	return strings.Join(lines, "\n")
}

// ExtractWithPattern 用单条正则提取首个捕获组，未命中返回默认值
func ExtractWithPattern(text string, re *regexp.Regexp, def string) string {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return def
}

// ExtractFirst 依次尝试多条正则，返回第一条命中的捕获组
func ExtractFirst(text string, patterns []*regexp.Regexp, def string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return def
}

// SplitLines 统一换行符后按行切分
func SplitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n"), "\n")
}
