package cisco_nxos

import (
	"regexp"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var (
	nxosPortRe      = regexp.MustCompile(`(?i)^(?:Eth|mgmt|Po|Lo|Vlan)\d+(?:[/.]\d+)*$`)
	nxosDottedMacRe = regexp.MustCompile(`(?i)\b([0-9a-f]{4})\.([0-9a-f]{4})\.([0-9a-f]{4})\b`)
	nxosVlanRe      = regexp.MustCompile(`^\d{1,4}$|^--$`)
	nxosDigitsRe    = regexp.MustCompile(`^\d{1,4}$`)
)

// parseInterfaceBrief 解析 show interface brief 回显
// NX-OS 表格首列为接口名，其余列按位置宽松映射
func parseInterfaceBrief(raw string) []parse.InterfaceRecord {
	interfaces := make([]parse.InterfaceRecord, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") {
			continue
		}
		parts := strings.Fields(trimmed)
		if len(parts) < 3 || !nxosPortRe.MatchString(parts[0]) {
			continue
		}
		rec := parse.InterfaceRecord{Name: parts[0]}
		if nxosVlanRe.MatchString(parts[1]) {
			rec.Vlan = parts[1]
		}
		for _, f := range parts[1:] {
			switch strings.ToLower(f) {
			case "up", "down", "noconnect", "notconnec", "notconnect", "sfpabsent":
				if rec.Status == "" {
					rec.Status = strings.ToLower(f)
				}
			}
		}
		interfaces = append(interfaces, rec)
	}
	return interfaces
}

// parseMacTable 解析 show mac address-table 回显（点分 MAC 规范化为冒号分隔）
func parseMacTable(raw string) []parse.MacTableEntry {
	entries := make([]parse.MacTableEntry, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		m := nxosDottedMacRe.FindStringSubmatch(trimmed)
		if len(m) != 4 {
			continue
		}
		hex := strings.ToLower(m[1] + m[2] + m[3])
		octets := make([]string, 0, 6)
		for i := 0; i < 12; i += 2 {
			octets = append(octets, hex[i:i+2])
		}

		entry := parse.MacTableEntry{MacAddress: strings.Join(octets, ":"), Type: "dynamic"}
		if strings.Contains(strings.ToLower(trimmed), "static") {
			entry.Type = "static"
		}
		fields := strings.Fields(strings.TrimLeft(trimmed, "*+ "))
		if len(fields) > 0 && nxosDigitsRe.MatchString(fields[0]) {
			entry.Vlan = fields[0]
		}
		if last := fields[len(fields)-1]; nxosPortRe.MatchString(last) {
			entry.Interface = last
		}
		entries = append(entries, entry)
	}
	return entries
}
