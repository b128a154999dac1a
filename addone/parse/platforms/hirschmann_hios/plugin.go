package hirschmann_hios

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// Plugin 为 hirschmann_hios 平台解析插件
// HiOS 各版本的标签措辞不一致，每个字段维护多条备选正则，
// 按声明顺序首中即用
type Plugin struct{}

func (p *Plugin) Name() string { return "hirschmann_hios" }

// ParseAll 对一台设备的全部命令回显做解析合并
func (p *Plugin) ParseAll(raw parse.RawOutput) (*parse.DeviceRecord, error) {
	rec := parse.NewDeviceRecord()
	rec.ParsedWith = p.Name()
	rec.RawAvailable = raw.Keys()

	for _, key := range raw.Keys() {
		text := raw[key]
		name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "_"))
		switch {
		case strings.Contains(name, "system"):
			parseSystemInformation(rec, text)
		case strings.Contains(name, "version"):
			parseVersion(rec, text)
		case strings.Contains(name, "mac"):
			rec.MacEntries = append(rec.MacEntries, parseMacTable(text)...)
		case strings.Contains(name, "interface") || strings.Contains(name, "port"):
			rec.Interfaces = append(rec.Interfaces, parseInterfacesBrief(text)...)
		}
	}
	return rec, nil
}

func init() { parse.Register("hirschmann_hios", &Plugin{}) }
