package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSnipOutput 头尾各取 maxLines 行
func TestSnipOutput(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%02d", i+1)
	}
	s := SnipOutput(strings.Join(lines, "\r\n"), 3)

	assert.Equal(t, 20, s.TotalLines)
	assert.Equal(t, []string{"line-01", "line-02", "line-03"}, s.HeadLines)
	assert.Equal(t, []string{"line-18", "line-19", "line-20"}, s.TailLines)
	assert.Contains(t, s.String(), "20 lines:")
	assert.Contains(t, s.String(), "...")
}

// TestSnipOutputShort 总行数不超过 maxLines 时头尾相同
func TestSnipOutputShort(t *testing.T) {
	s := SnipOutput("a\nb", 5)
	assert.Equal(t, 2, s.TotalLines)
	assert.Equal(t, s.HeadLines, s.TailLines)
	assert.NotContains(t, s.String(), "...")
}

// TestSnipOutputEmpty 空输入
func TestSnipOutputEmpty(t *testing.T) {
	s := SnipOutput("", 5)
	assert.Equal(t, 0, s.TotalLines)
	assert.Equal(t, "<empty>", s.String())
}
