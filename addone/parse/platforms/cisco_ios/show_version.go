package cisco_ios

import (
	"regexp"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// show version 的固定提取规则表，按声明顺序独立尝试，
// 单条未命中不影响其他字段
var versionPatterns = []parse.FieldPattern{
	{Field: "serial_number", Pattern: regexp.MustCompile(`(?i)Processor board ID (\w+)`)},
	{Field: "model", Pattern: regexp.MustCompile(`(?i)cisco (\S+) \(`)},
	{Field: "version", Pattern: regexp.MustCompile(`(?i)Version ([^\s,]+)`)},
	{Field: "hostname", Pattern: regexp.MustCompile(`(?i)(\S+) uptime`)},
	{Field: "uptime", Pattern: regexp.MustCompile(`(?i)uptime is ([^\r\n]+)`)},
	{Field: "base_mac", Pattern: regexp.MustCompile(`(?i)Base Ethernet MAC Address\s*:\s*([0-9a-fA-F:.\-]+)`)},
	{Field: "system_serial", Pattern: regexp.MustCompile(`(?i)System Serial Number\s*:\s*(\S+)`)},
}

// parseVersion 解析 show version 回显并合并进设备记录
func parseVersion(rec *parse.DeviceRecord, raw string) {
	text := parse.CleanOutput(raw)
	for _, fp := range versionPatterns {
		v := parse.ExtractWithPattern(text, fp.Pattern, parse.Unknown)
		if v == parse.Unknown {
			continue
		}
		switch fp.Field {
		case "serial_number":
			rec.SerialNumber = v
		case "model":
			rec.Model = v
		case "version":
			rec.Version = v
		case "hostname":
			rec.Hostname = v
		case "uptime":
			rec.Uptime = v
		case "base_mac":
			rec.BaseMAC = v
		case "system_serial":
			rec.SystemSerial = v
		}
	}
}
