package parse

import (
	"regexp"
	"strings"
)

// 通用解析器的宽松规则表：不依赖任何厂商格式，标签式提取
var genericSerialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Serial Number\s*[:=]?\s*(\S+)`),
	regexp.MustCompile(`(?i)SN[:=]\s*(\S+)`),
}

var genericMacPattern = regexp.MustCompile(`(?i)([0-9a-f]{2}[:-]){5}[0-9a-f]{2}`)

var genericFieldPatterns = []FieldPattern{
	{Field: "model", Pattern: regexp.MustCompile(`(?i)(?:Model|Product|Hardware)\s*[:=]\s*([^\r\n]+)`)},
	{Field: "version", Pattern: regexp.MustCompile(`(?i)Version\s*[:=]?\s*(\S+)`)},
	{Field: "uptime", Pattern: regexp.MustCompile(`(?i)up\s?time(?:\s+is)?\s*[:=]?\s*([^\r\n]+)`)},
}

// GenericParser 厂商无关的兜底解析器
// 用于无专用解析器的设备类型，以及专用解析器出错时的安全网；
// 永不失败——它是最后一级兜底，不允许再需要兜底
type GenericParser struct{}

func (g *GenericParser) Name() string { return "generic" }

// ParseAll 对所有命令回显拼接后做尽力而为的标签提取
func (g *GenericParser) ParseAll(raw RawOutput) (*DeviceRecord, error) {
	return g.Parse(raw, ""), nil
}

// Parse 是带设备类型标注的入口，注册表兜底路径使用
func (g *GenericParser) Parse(raw RawOutput, deviceType string) *DeviceRecord {
	rec := NewDeviceRecord()
	rec.DeviceType = deviceType
	rec.ParsedWith = "generic"
	rec.RawAvailable = raw.Keys()

	// 优先用 version 类命令，没有则拼接全部可用文本
	text := rawTextForExtraction(raw)
	if text == "" {
		return rec
	}
	text = CleanOutput(text)

	rec.SerialNumber = ExtractFirst(text, genericSerialPatterns, Unknown)
	if m := genericMacPattern.FindString(text); m != "" {
		rec.BaseMAC = m
	}
	for _, fp := range genericFieldPatterns {
		v := ExtractWithPattern(text, fp.Pattern, Unknown)
		switch fp.Field {
		case "model":
			rec.Model = v
		case "version":
			rec.Version = v
		case "uptime":
			rec.Uptime = v
		}
	}
	if name := ExtractHostname(text); name != Unknown {
		rec.Hostname = name
	}
	return rec
}

// rawTextForExtraction 选取最适合做字段提取的文本：
// version 类命令优先，其次全部回显拼接
func rawTextForExtraction(raw RawOutput) string {
	for _, key := range []string{"version", "show_version", "display_version"} {
		if text, ok := raw[key]; ok && strings.TrimSpace(text) != "" {
			return text
		}
	}
	var sb strings.Builder
	for _, key := range raw.Keys() {
		sb.WriteString(raw[key])
		sb.WriteString("\n")
	}
	return sb.String()
}
