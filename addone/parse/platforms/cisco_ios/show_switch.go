package cisco_ios

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// parseStackMembers 解析 show switch 的堆叠成员列表
// 固定列序：Switch# Role Mac-Address Priority H/W-Version State
// 当前成员行以 * 前缀标记，解析时剥除
func parseStackMembers(raw string) []parse.StackMember {
	members := make([]parse.StackMember, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") {
			continue
		}
		low := strings.ToLower(trimmed)
		if strings.Contains(low, "switch#") || strings.Contains(low, "mac address :") ||
			strings.Contains(low, "h/w") || strings.Contains(low, "current") {
			continue
		}

		trimmed = strings.TrimPrefix(trimmed, "*")
		parts := strings.Fields(trimmed)
		if len(parts) < 6 {
			continue
		}
		if !isDigits(parts[0]) {
			continue
		}
		members = append(members, parse.StackMember{
			SwitchNumber: parts[0],
			Role:         parts[1],
			MacAddress:   strings.ToLower(parts[2]),
			Priority:     parts[3],
			Version:      parts[4],
			State:        parts[5],
		})
	}
	return members
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
