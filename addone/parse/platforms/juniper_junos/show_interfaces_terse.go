package juniper_junos

import (
	"regexp"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var junosIfNameRe = regexp.MustCompile(`(?i)^(?:ge|xe|et|fe|ae|lo|me|em|fxp|irb|vlan|vme)[\d\-]*(?:/\d+)*(?:\.\d+)?$`)

// parseInterfacesTerse 解析 show interfaces terse 回显
// 列序：Interface Admin Link Proto Local
func parseInterfacesTerse(raw string) []parse.InterfaceRecord {
	interfaces := make([]parse.InterfaceRecord, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(strings.ToLower(trimmed), "interface") {
			continue
		}
		parts := strings.Fields(trimmed)
		if len(parts) < 3 || !junosIfNameRe.MatchString(parts[0]) {
			continue
		}
		rec := parse.InterfaceRecord{
			Name:        parts[0],
			AdminStatus: parts[1],
			Status:      parts[2],
		}
		if len(parts) >= 4 {
			rec.Protocol = parts[3]
		}
		if len(parts) >= 5 {
			rec.IP = parts[4]
		}
		interfaces = append(interfaces, rec)
	}
	return interfaces
}
