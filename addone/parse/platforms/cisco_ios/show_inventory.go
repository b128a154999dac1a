package cisco_ios

import (
	"regexp"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var (
	invNameRe  = regexp.MustCompile(`(?i)NAME:\s*"?([^",]+)"?`)
	invDescrRe = regexp.MustCompile(`(?i)DESCR:\s*"?([^"]+?)"?\s*$`)
	invPidRe   = regexp.MustCompile(`(?i)PID:\s*([^\s,]+)`)
	invVidRe   = regexp.MustCompile(`(?i)VID:\s*([^\s,]+)`)
	invSnRe    = regexp.MustCompile(`(?i)SN:\s*(\S+)`)
)

// parseInventoryBlocks 解析 show inventory 的重复块格式
// 块以 NAME: 行开始，在空行或下一个 NAME: 行处落盘；
// 没有打开块时出现的游离标签行（如孤立的 PID:）直接丢弃
func parseInventoryBlocks(raw string) []parse.HardwareModule {
	modules := make([]parse.HardwareModule, 0)
	var current *parse.HardwareModule

	flush := func() {
		if current != nil {
			modules = append(modules, *current)
			current = nil
		}
	}

	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if m := invNameRe.FindStringSubmatch(trimmed); len(m) > 1 {
			flush()
			current = &parse.HardwareModule{Name: strings.TrimSpace(m[1])}
		}
		if current == nil {
			continue
		}
		if m := invDescrRe.FindStringSubmatch(trimmed); len(m) > 1 {
			current.Description = strings.TrimSpace(m[1])
		}
		if m := invPidRe.FindStringSubmatch(trimmed); len(m) > 1 {
			current.ProductID = strings.TrimSpace(m[1])
		}
		if m := invVidRe.FindStringSubmatch(trimmed); len(m) > 1 {
			current.VersionID = strings.TrimSpace(m[1])
		}
		if m := invSnRe.FindStringSubmatch(trimmed); len(m) > 1 {
			current.SerialNumber = strings.TrimSpace(m[1])
		}
	}
	flush()
	return modules
}
