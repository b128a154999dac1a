package parse

import (
	"regexp"
	"sync"
)

// 主机名提取规则，按优先级排列：
// 1. 用户模式提示符（token>）
// 2. 特权模式提示符（token#）
// 3. 显式的 Hostname / System Name / sysname 标签
// 严格按顺序尝试，单条规则取首个命中，整体首中即返
var hostnamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^([A-Za-z0-9][\w.\-]*)>`),
	regexp.MustCompile(`(?m)^([A-Za-z0-9][\w.\-]*)#`),
	regexp.MustCompile(`(?im)^\s*(?:hostname|host name|system name|device name|sysname)\s*[:=]?\s+([^\s].*?)\s*$`),
}

// HostnameStats 主机名提取的累计统计
type HostnameStats struct {
	Extracted int `json:"extracted"`
	Failed    int `json:"failed"`
}

// HostnameResolver 跨厂商的主机名提取器
// 统计计数归属单个注册表实例，每次采集使用新实例避免跨批次串数
type HostnameResolver struct {
	mu    sync.Mutex
	stats HostnameStats
}

// Extract 从任意回显文本中提取设备主机名，未命中返回 Unknown
func (h *HostnameResolver) Extract(text string) string {
	name := ExtractHostname(text)

	h.mu.Lock()
	if name == Unknown {
		h.stats.Failed++
	} else {
		h.stats.Extracted++
	}
	h.mu.Unlock()
	return name
}

// Stats 返回当前统计快照
func (h *HostnameResolver) Stats() HostnameStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// ExtractHostname 无状态版本的主机名提取（不更新统计）
func ExtractHostname(text string) string {
	if text == "" {
		return Unknown
	}
	for _, re := range hostnamePatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return Unknown
}
