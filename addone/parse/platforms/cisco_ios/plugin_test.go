package cisco_ios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

const sampleShowVersion = `Router1#show version
Cisco IOS Software, C2960X Software (C2960X-UNIVERSALK9-M), Version 15.2(4)E10, RELEASE SOFTWARE (fc2)
Router1 uptime is 2 years, 15 weeks, 3 days, 6 hours, 52 minutes
System image file is "flash:c2960x-universalk9-mz.152-4.E10.bin"
cisco WS-C2960X-48TS-L (APM86XXX) processor (revision A0) with 262144K bytes of memory.
Processor board ID FOC1932X0K1
Base Ethernet MAC Address       : 70:10:5c:a1:b2:c3
System Serial Number            : FOC1932X0K1
`

// TestParseVersion show version 固定规则表提取
func TestParseVersion(t *testing.T) {
	rec := parse.NewDeviceRecord()
	parseVersion(rec, sampleShowVersion)

	assert.Equal(t, "Router1", rec.Hostname)
	assert.Equal(t, "WS-C2960X-48TS-L", rec.Model)
	assert.Equal(t, "15.2(4)E10", rec.Version)
	assert.Equal(t, "FOC1932X0K1", rec.SerialNumber)
	assert.Equal(t, "FOC1932X0K1", rec.SystemSerial)
	assert.Equal(t, "70:10:5c:a1:b2:c3", rec.BaseMAC)
	assert.Equal(t, "2 years, 15 weeks, 3 days, 6 hours, 52 minutes", rec.Uptime)
}

// TestParseVersionPromptOnly 没有 uptime 行时主机名由注册表从提示符补齐
func TestParseVersionPromptOnly(t *testing.T) {
	raw := parse.RawOutput{
		"version": "Router1#\nCisco IOS Software, Version 15.2(4)E10\nProcessor board ID FOC1932X0K1\n",
	}
	r := parse.NewRegistry()
	rec := r.ParseDeviceOutput("cisco_ios", raw)

	assert.Equal(t, "Router1", rec.Hostname)
	assert.Equal(t, "15.2(4)E10", rec.Version)
	assert.Equal(t, "FOC1932X0K1", rec.SerialNumber)
	assert.Equal(t, "cisco_ios", rec.ParsedWith)
}

// TestParseInterfaceBrief 表格行按空白切分取前六列
func TestParseInterfaceBrief(t *testing.T) {
	raw := `Interface              IP-Address      OK? Method Status                Protocol
GigabitEthernet0/1     192.168.1.1     YES NVRAM  up                    up
GigabitEthernet0/2     unassigned      YES unset  administratively down down
Vlan1                  10.0.0.1        YES manual up                    up
shortline
`
	ifaces := parseInterfaceBrief(raw)
	require.Len(t, ifaces, 3, "表头行与字段不足的行跳过")

	assert.Equal(t, "GigabitEthernet0/1", ifaces[0].Name)
	assert.Equal(t, "192.168.1.1", ifaces[0].IP)
	assert.Equal(t, "up", ifaces[0].Status)
	assert.Equal(t, "up", ifaces[0].Protocol)
	assert.Equal(t, "administratively", ifaces[1].Status)
	assert.Equal(t, "Vlan1", ifaces[2].Name)
}

// TestParseInterfaceBriefTokenRule 六字段规则是机械的：
// 不含 Interface 字样的表头若有六个以上字段，同样按数据行解析
func TestParseInterfaceBriefTokenRule(t *testing.T) {
	raw := "Port Name Status Vlan Duplex Speed Type\n" +
		"Gi0/1 - notconnect 1 auto auto 10/100/1000BaseTX\n"
	ifaces := parseInterfaceBrief(raw)
	require.Len(t, ifaces, 2)
	assert.Equal(t, "Port", ifaces[0].Name)
	assert.Equal(t, "Gi0/1", ifaces[1].Name)

	// 不足六个字段时产出零条记录且不报错
	assert.Empty(t, parseInterfaceBrief("Gi0/1 up up\n"))
}

// TestParseInventoryBlocks NAME 块解析与游离标签行丢弃
func TestParseInventoryBlocks(t *testing.T) {
	raw := `PID: ORPHAN-1 , VID: V00 , SN: SHOULD-DROP

NAME: "1", DESCR: "WS-C2960X-48TS-L"
PID: WS-C2960X-48TS-L , VID: V05  , SN: FOC1932X0K1

NAME: "Switch 1 - Power Supply", DESCR: "ATT Power Supply"
PID: PWR-C2-250WAC    , VID: V02  , SN: LIT19300ABC
NAME: "GigabitEthernet1/0/49", DESCR: "1000BaseSX SFP"
PID: GLC-SX-MMD       , VID: V01  , SN: AGM183700XY
`
	mods := parseInventoryBlocks(raw)
	require.Len(t, mods, 3, "游离标签行不产生模块；NAME 行与空行都会落盘前序块")

	assert.Equal(t, "1", mods[0].Name)
	assert.Equal(t, "WS-C2960X-48TS-L", mods[0].Description)
	assert.Equal(t, "WS-C2960X-48TS-L", mods[0].ProductID)
	assert.Equal(t, "V05", mods[0].VersionID)
	assert.Equal(t, "FOC1932X0K1", mods[0].SerialNumber)

	assert.Equal(t, "Switch 1 - Power Supply", mods[1].Name)
	assert.Equal(t, "PWR-C2-250WAC", mods[1].ProductID)

	// 无空行分隔、直接跟下一个 NAME: 的块同样闭合
	assert.Equal(t, "GigabitEthernet1/0/49", mods[2].Name)
	assert.Equal(t, "AGM183700XY", mods[2].SerialNumber)
}

// TestParseMacTable MAC 规范化与字段归位
func TestParseMacTable(t *testing.T) {
	raw := `          Mac Address Table
-------------------------------------------
Vlan    Mac Address       Type        Ports
----    -----------       --------    -----
 100    aabb.ccdd.eeff    DYNAMIC     Gi1/0/1
 200    0011.2233.4455    STATIC      Gi1/0/2
 All    0100.0ccc.cccc    STATIC      CPU
`
	entries := parseMacTable(raw)
	require.Len(t, entries, 3)

	assert.Equal(t, "aa:bb:cc:dd:ee:ff", entries[0].MacAddress, "点分格式规范化为冒号分隔小写")
	assert.Equal(t, "100", entries[0].Vlan)
	assert.Equal(t, "Gi1/0/1", entries[0].Interface)
	assert.Equal(t, "dynamic", entries[0].Type)

	assert.Equal(t, "static", entries[1].Type)
	assert.Equal(t, "Gi1/0/2", entries[1].Interface)

	// VLAN 列非数字时留空，不猜
	assert.Equal(t, "", entries[2].Vlan)
}

// TestParseStackMembers show switch 堆叠成员
func TestParseStackMembers(t *testing.T) {
	raw := `Switch/Stack Mac Address : 7010.5ca1.b2c3
                                           H/W   Current
Switch#  Role   Mac Address     Priority Version  State
-------------------------------------------------------
*1       Master 7010.5ca1.b2c3     15     4       Ready
 2       Member 7010.5ca1.b2c4     10     4       Ready
 3       Member 0000.0000.0000      1     0       Removed
`
	members := parseStackMembers(raw)
	require.Len(t, members, 3)

	assert.Equal(t, "1", members[0].SwitchNumber, "当前成员行的 * 前缀剥除")
	assert.Equal(t, "Master", members[0].Role)
	assert.Equal(t, "15", members[0].Priority)
	assert.Equal(t, "Ready", members[0].State)
	assert.Equal(t, "3", members[2].SwitchNumber)
	assert.Equal(t, "Removed", members[2].State)
}

// TestPluginParseAll 整机合并：各命令独立解析，未知命令保留忽略
func TestPluginParseAll(t *testing.T) {
	p := &Plugin{}
	raw := parse.RawOutput{
		"show_version": sampleShowVersion,
		"show_ip_interface_brief": "Interface IP-Address OK? Method Status Protocol\n" +
			"Gi0/1 10.1.1.1 YES NVRAM up up\n",
		"show_mac_address_table": " 100    aabb.ccdd.eeff    DYNAMIC     Gi1/0/1\n",
		"show_running_config":    "not something this plugin understands",
	}
	rec, err := p.ParseAll(raw)
	require.NoError(t, err)

	assert.Equal(t, "Router1", rec.Hostname)
	assert.Len(t, rec.Interfaces, 1)
	assert.Len(t, rec.MacEntries, 1)
	assert.Equal(t, "cisco_ios", rec.ParsedWith)
	assert.Equal(t,
		[]string{"show_ip_interface_brief", "show_mac_address_table", "show_running_config", "show_version"},
		rec.RawAvailable)
}

// TestClassifyCommand 命令归类
func TestClassifyCommand(t *testing.T) {
	assert.Equal(t, cmdVersion, classifyCommand("show version"))
	assert.Equal(t, cmdInventory, classifyCommand("show_inventory"))
	assert.Equal(t, cmdMacTable, classifyCommand("show mac address-table"))
	assert.Equal(t, cmdStack, classifyCommand("show switch"))
	assert.Equal(t, cmdInterfaces, classifyCommand("show ip interface brief"))
	assert.Equal(t, cmdUnknown, classifyCommand("show running-config"))
}
