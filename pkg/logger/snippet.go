package logger

import (
	"fmt"
	"strings"
)

// OutputSnippet 命令回显的头尾片段，用于在日志中记录超长回显
type OutputSnippet struct {
	HeadLines  []string `json:"head_lines"`
	TailLines  []string `json:"tail_lines"`
	TotalLines int      `json:"total_lines"`
}

// SnipOutput 截取命令回显的头部与尾部各 maxLines 行
// 总行数不超过 maxLines 时头尾相同
func SnipOutput(output string, maxLines int) OutputSnippet {
	if maxLines <= 0 {
		maxLines = 5
	}

	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.ReplaceAll(output, "\r", "\n")
	lines := strings.Split(output, "\n")
	total := len(lines)
	if output == "" {
		return OutputSnippet{}
	}

	n := maxLines
	if n > total {
		n = total
	}
	head := make([]string, n)
	copy(head, lines[:n])

	tail := make([]string, n)
	if total <= maxLines {
		copy(tail, head)
	} else {
		copy(tail, lines[total-n:])
	}

	return OutputSnippet{HeadLines: head, TailLines: tail, TotalLines: total}
}

// String 把片段压成单行便于写日志
func (s OutputSnippet) String() string {
	if s.TotalLines == 0 {
		return "<empty>"
	}
	head := strings.Join(s.HeadLines, "\\n")
	if s.TotalLines <= len(s.HeadLines) {
		return fmt.Sprintf("%d lines: %s", s.TotalLines, head)
	}
	tail := strings.Join(s.TailLines, "\\n")
	return fmt.Sprintf("%d lines: %s ... %s", s.TotalLines, head, tail)
}
