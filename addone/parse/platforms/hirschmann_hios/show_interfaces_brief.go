package hirschmann_hios

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// parseInterfacesBrief 解析 show interfaces brief 的表格回显
// 先定位表头行确认这是一张接口表，再逐行宽松映射：
// 第一列是接口名，后续列按常见取值猜测归属（状态/管理状态/VLAN/速率/双工）
func parseInterfacesBrief(raw string) []parse.InterfaceRecord {
	interfaces := make([]parse.InterfaceRecord, 0)
	lines := parse.SplitLines(parse.CleanOutput(raw))

	headerIdx := findTableHeader(lines, []string{"interface", "port", "status"})
	if headerIdx == -1 {
		return interfaces
	}

	for _, line := range lines[headerIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "=") {
			continue
		}
		if rec, ok := parseInterfaceLine(trimmed); ok {
			interfaces = append(interfaces, rec)
		}
	}
	return interfaces
}

// findTableHeader 返回首个包含任一关键词的行下标，找不到返回 -1
func findTableHeader(lines []string, keywords []string) int {
	for i, line := range lines {
		low := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(low, kw) {
				return i
			}
		}
	}
	return -1
}

// parseInterfaceLine 解析单行接口数据，字段不足两个时放弃该行
func parseInterfaceLine(line string) (parse.InterfaceRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return parse.InterfaceRecord{}, false
	}

	rec := parse.InterfaceRecord{Name: fields[0], Status: "unknown", AdminStatus: "unknown"}
	switch strings.ToLower(fields[1]) {
	case "up", "down", "admin-down", "testing":
		rec.Status = strings.ToLower(fields[1])
	}

	if len(fields) >= 3 {
		third := strings.ToLower(fields[2])
		switch {
		case third == "up" || third == "down" || third == "enabled" || third == "disabled":
			rec.AdminStatus = third
		case isAllDigits(fields[2]):
			rec.Vlan = fields[2]
		default:
			rec.Speed = fields[2]
		}
	}
	if len(fields) >= 4 {
		fourth := strings.ToLower(fields[3])
		if strings.Contains(fourth, "full") || strings.Contains(fourth, "half") {
			rec.Duplex = fields[3]
		}
	}
	return rec, true
}

func isAllDigits(s string) bool {
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
