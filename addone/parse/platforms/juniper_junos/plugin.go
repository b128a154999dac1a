package juniper_junos

import (
	"regexp"
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// Plugin 为 juniper_junos 平台解析插件
type Plugin struct{}

func (p *Plugin) Name() string { return "juniper_junos" }

// show version 规则表：Junos 回显是标签式的，直接按标签取值
var versionPatterns = []parse.FieldPattern{
	{Field: "hostname", Pattern: regexp.MustCompile(`(?im)^Hostname:\s*(\S+)`)},
	{Field: "model", Pattern: regexp.MustCompile(`(?im)^Model:\s*(\S+)`)},
	{Field: "version", Pattern: regexp.MustCompile(`(?im)^Junos:\s*(\S+)`)},
	{Field: "version_legacy", Pattern: regexp.MustCompile(`(?i)JUNOS [^\[]*\[(\S+)\]`)},
	{Field: "serial_number", Pattern: regexp.MustCompile(`(?i)Serial Number\s*[:=]?\s*(\S+)`)},
	{Field: "uptime", Pattern: regexp.MustCompile(`(?i)up(?:time)?:?\s+((?:\d+\s+\w+[ ,]*)+)`)},
}

// ParseAll 对一台设备的全部命令回显做解析合并
func (p *Plugin) ParseAll(raw parse.RawOutput) (*parse.DeviceRecord, error) {
	rec := parse.NewDeviceRecord()
	rec.ParsedWith = p.Name()
	rec.RawAvailable = raw.Keys()

	for _, key := range raw.Keys() {
		text := raw[key]
		name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "_"))
		switch {
		case strings.Contains(name, "version"):
			parseVersion(rec, text)
		case strings.Contains(name, "terse") || strings.Contains(name, "interface"):
			rec.Interfaces = append(rec.Interfaces, parseInterfacesTerse(text)...)
		}
	}
	return rec, nil
}

func parseVersion(rec *parse.DeviceRecord, raw string) {
	text := parse.CleanOutput(raw)
	for _, fp := range versionPatterns {
		v := parse.ExtractWithPattern(text, fp.Pattern, parse.Unknown)
		if v == parse.Unknown {
			continue
		}
		switch fp.Field {
		case "hostname":
			rec.Hostname = v
		case "model":
			rec.Model = v
		case "version":
			rec.Version = v
		case "version_legacy":
			if rec.Version == parse.Unknown {
				rec.Version = v
			}
		case "serial_number":
			rec.SerialNumber = v
		case "uptime":
			rec.Uptime = strings.TrimRight(v, ", ")
		}
	}
}

func init() { parse.Register("juniper_junos", &Plugin{}) }
