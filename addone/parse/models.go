package parse

import "sort"

// 解析结果中字段缺失时的哨兵值
const Unknown = "Unknown"

// RawOutput 单台设备的原始命令回显（命令名 -> 回显文本）
// 命令名不跨厂商统一，各平台解析器只识别自己理解的子集，其余保留忽略
type RawOutput map[string]string

// Keys 返回回显中包含的命令名（排序后，便于诊断输出稳定）
func (r RawOutput) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InterfaceRecord 接口信息（顺序与设备回显一致，不排序）
type InterfaceRecord struct {
	Name        string `json:"name"`
	IP          string `json:"ip,omitempty"`
	OK          string `json:"ok,omitempty"`
	Method      string `json:"method,omitempty"`
	Status      string `json:"status,omitempty"`
	AdminStatus string `json:"admin_status,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Description string `json:"description,omitempty"`
	Speed       string `json:"speed,omitempty"`
	Duplex      string `json:"duplex,omitempty"`
	Vlan        string `json:"vlan,omitempty"`
	Type        string `json:"type,omitempty"`
}

// MacTableEntry MAC 地址表条目
type MacTableEntry struct {
	MacAddress string `json:"mac_address"`
	Vlan       string `json:"vlan"`
	Interface  string `json:"interface"`
	Type       string `json:"type"` // dynamic / static
	Age        string `json:"age,omitempty"`
}

// HardwareModule 硬件清单模块（show inventory 的一个 NAME 块）
type HardwareModule struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductID    string `json:"product_id"`
	VersionID    string `json:"version_id"`
	SerialNumber string `json:"serial_number"`
}

// StackMember 堆叠成员信息
type StackMember struct {
	SwitchNumber string `json:"switch_number"`
	Role         string `json:"role"`
	MacAddress   string `json:"mac_address"`
	Priority     string `json:"priority"`
	Version      string `json:"version"`
	State        string `json:"state"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// DeviceRecord 单台设备解析后的规范化结果
// 约定：规范字段永远存在，未提取到时保持哨兵值 Unknown；
// 消费方只需判断哨兵值，不需要判断字段缺失
type DeviceRecord struct {
	Hostname     string `json:"hostname"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	SystemSerial string `json:"system_serial"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	BaseMAC      string `json:"base_mac"`

	Interfaces      []InterfaceRecord `json:"interfaces"`
	MacEntries      []MacTableEntry   `json:"mac_entries,omitempty"`
	HardwareModules []HardwareModule  `json:"hardware_modules,omitempty"`
	StackMembers    []StackMember     `json:"stack_details,omitempty"`
	TotalModules    int               `json:"total_modules,omitempty"`

	// 诊断字段：使用的解析路径与当时可用的命令清单
	DeviceType   string   `json:"device_type,omitempty"`
	ParsedWith   string   `json:"parsed_with,omitempty"`
	RawAvailable []string `json:"raw_available,omitempty"`
}

// NewDeviceRecord 创建全哨兵值的设备记录
func NewDeviceRecord() *DeviceRecord {
	return &DeviceRecord{
		Hostname:     Unknown,
		Model:        Unknown,
		SerialNumber: Unknown,
		SystemSerial: Unknown,
		Version:      Unknown,
		Uptime:       Unknown,
		BaseMAC:      Unknown,
		Interfaces:   []InterfaceRecord{},
	}
}

// HostnameKnown 主机名是否已成功提取
func (d *DeviceRecord) HostnameKnown() bool {
	return d.Hostname != "" && d.Hostname != Unknown
}

// VendorParser 厂商解析器接口：纯文本处理，无 I/O
// ParseAll 对缺失字段一律返回哨兵值而非错误；error 只用于内部异常，
// 由注册表兜底转入通用解析器
type VendorParser interface {
	Name() string
	ParseAll(raw RawOutput) (*DeviceRecord, error)
}
