package cisco_nxos

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// Plugin 为 cisco_nxos 平台解析插件
// NX-OS 的 show version 回显结构与 IOS 差异较大，单独维护规则表
type Plugin struct{}

func (p *Plugin) Name() string { return "cisco_nxos" }

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
		case strings.Contains(name, "mac"):
			rec.MacEntries = append(rec.MacEntries, parseMacTable(text)...)
		case strings.Contains(name, "interface"):
			rec.Interfaces = append(rec.Interfaces, parseInterfaceBrief(text)...)
		}
	}
	return rec, nil
}

func init() { parse.Register("cisco_nxos", &Plugin{}) }
