package cisco_ios

import (
	"regexp"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var (
	ciscoDottedMacRe = regexp.MustCompile(`(?i)\b([0-9a-f]{4})\.([0-9a-f]{4})\.([0-9a-f]{4})\b`)
	colonMacRe       = regexp.MustCompile(`(?i)\b(?:[0-9a-f]{2}[:-]){5}[0-9a-f]{2}\b`)
	macPortRe        = regexp.MustCompile(`(?i)^(?:[a-z]+ ?)?(?:eth|fa|gi|te|fo|hu|po|port)[a-z\-]*\d+(?:[/:.]\d+)*$`)
	vlanFieldRe      = regexp.MustCompile(`^\d{1,4}$`)
)

// parseMacTable 解析 show mac address-table 回显
// 行内必须出现合法 MAC 才计入；点分格式规范化为冒号分隔
func parseMacTable(raw string) []parse.MacTableEntry {
	entries := make([]parse.MacTableEntry, 0)
	for _, line := range parse.SplitLines(parse.CleanOutput(raw)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "=") {
			continue
		}
		low := strings.ToLower(trimmed)
		if strings.Contains(low, "mac address table") || strings.Contains(low, "vlan") && strings.Contains(low, "ports") {
			continue
		}

		mac := normalizeMac(trimmed)
		if mac == "" {
			continue
		}

		entry := parse.MacTableEntry{MacAddress: mac, Type: "dynamic"}
		if strings.Contains(low, "static") || strings.Contains(low, "permanent") {
			entry.Type = "static"
		}
		for _, field := range strings.Fields(trimmed) {
			if entry.Vlan == "" && vlanFieldRe.MatchString(field) {
				entry.Vlan = field
				continue
			}
			if entry.Interface == "" && macPortRe.MatchString(field) {
				entry.Interface = field
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// normalizeMac 从行内提取 MAC 并统一为冒号分隔的小写十六进制
func normalizeMac(line string) string {
	if m := colonMacRe.FindString(line); m != "" {
		return strings.ToLower(strings.ReplaceAll(m, "-", ":"))
	}
	if m := ciscoDottedMacRe.FindStringSubmatch(line); len(m) == 4 {
		hex := strings.ToLower(m[1] + m[2] + m[3])
		parts := make([]string, 0, 6)
		for i := 0; i < 12; i += 2 {
			parts = append(parts, hex[i:i+2])
		}
		return strings.Join(parts, ":")
	}
	return ""
}
