package cisco_ios

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// parseInterfaceBrief 解析 show ip interface brief 类的表格回显
// 表头（含 Interface 字样）与分隔行（---）跳过；
// 数据行按空白切分取前六个字段：名称/IP/ok/method/状态/协议，
// 不足六个字段的行容忍跳过，不视为错误
func parseInterfaceBrief(raw string) []parse.InterfaceRecord {
	interfaces := make([]parse.InterfaceRecord, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "Interface") || strings.Contains(line, "---") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		interfaces = append(interfaces, parse.InterfaceRecord{
			Name:     parts[0],
			IP:       parts[1],
			OK:       parts[2],
			Method:   parts[3],
			Status:   parts[4],
			Protocol: parts[5],
		})
	}
	return interfaces
}
