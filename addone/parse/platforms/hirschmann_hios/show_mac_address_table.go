package hirschmann_hios

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var (
	hiosMacRe       = regexp.MustCompile(`(?i)(?:[0-9a-f]{2}[:-]){5}[0-9a-f]{2}`)
	hiosInterfaceRe = regexp.MustCompile(`(?i)^(?:\d+(?:/\d+)+|[a-z]+\d+(?:[/\d]*)|port\d+|ethernet\d+)`)
)

// parseMacTable 解析 show mac-address-table 回显
// 行内必须有合法 MAC；VLAN 取 1..4094 的数字字段；
// 含 static/permanent 字样的行标记为静态条目
func parseMacTable(raw string) []parse.MacTableEntry {
	entries := make([]parse.MacTableEntry, 0)
	lines := parse.SplitLines(parse.CleanOutput(raw))

	headerIdx := findTableHeader(lines, []string{"mac", "address", "vlan", "port"})
	if headerIdx == -1 {
		return entries
	}

	for _, line := range lines[headerIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "=") {
			continue
		}
		if entry, ok := parseMacLine(trimmed); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseMacLine 解析单条 MAC 表项，无合法 MAC 时放弃该行
func parseMacLine(line string) (parse.MacTableEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return parse.MacTableEntry{}, false
	}
	mac := hiosMacRe.FindString(line)
	if mac == "" {
		return parse.MacTableEntry{}, false
	}

	entry := parse.MacTableEntry{
		MacAddress: strings.ToLower(strings.ReplaceAll(mac, "-", ":")),
		Type:       "dynamic",
	}
	low := strings.ToLower(line)
	if strings.Contains(low, "static") || strings.Contains(low, "permanent") {
		entry.Type = "static"
	}
	for _, f := range fields {
		if entry.Vlan == "" {
			if n, err := strconv.Atoi(f); err == nil && n >= 1 && n <= 4094 {
				entry.Vlan = f
				continue
			}
		}
		if entry.Interface == "" && !strings.Contains(f, ":") && hiosInterfaceRe.MatchString(f) {
			entry.Interface = f
		}
	}
	return entry, true
}
