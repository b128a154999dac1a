package cisco_ios

import (
	"strings"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// Plugin 为 cisco_ios 家族（IOS/IOS-XE/ASA）解析插件
type Plugin struct{}

func (p *Plugin) Name() string { return "cisco_ios" }

// 命令类别
const (
	cmdUnknown = iota
	cmdVersion
	cmdInventory
	cmdInterfaces
	cmdMacTable
	cmdStack
)

// classifyCommand 将命令名归入解析类别，无法归类的命令静默忽略
// （对新增命令向前兼容）
func classifyCommand(name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	switch {
	case strings.Contains(key, "version"):
		return cmdVersion
	case strings.Contains(key, "inventory"):
		return cmdInventory
	case strings.Contains(key, "mac"):
		return cmdMacTable
	case strings.Contains(key, "switch") || strings.Contains(key, "module") || strings.Contains(key, "platform"):
		return cmdStack
	case strings.Contains(key, "interface"):
		return cmdInterfaces
	default:
		return cmdUnknown
	}
}

// ParseAll 对一台设备的全部命令回显做解析合并
// 单条命令的字段缺失以哨兵值表示，不影响其余命令的提取
func (p *Plugin) ParseAll(raw parse.RawOutput) (*parse.DeviceRecord, error) {
	rec := parse.NewDeviceRecord()
	rec.ParsedWith = p.Name()
	rec.RawAvailable = raw.Keys()

	for _, key := range raw.Keys() {
		text := raw[key]
		switch classifyCommand(key) {
		case cmdVersion:
			parseVersion(rec, text)
		case cmdInventory:
			mods := parseInventoryBlocks(text)
			rec.HardwareModules = append(rec.HardwareModules, mods...)
			rec.TotalModules = len(rec.HardwareModules)
		case cmdInterfaces:
			rec.Interfaces = append(rec.Interfaces, parseInterfaceBrief(text)...)
		case cmdMacTable:
			rec.MacEntries = append(rec.MacEntries, parseMacTable(text)...)
		case cmdStack:
			rec.StackMembers = append(rec.StackMembers, parseStackMembers(text)...)
		}
	}
	return rec, nil
}

func init() {
	p := &Plugin{}
	parse.Register("cisco_ios", p)
	parse.Register("cisco_xe", p)
	parse.Register("cisco_asa", p)
}
