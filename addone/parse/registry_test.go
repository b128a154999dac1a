package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 故障注入用的假解析器
type faultyParser struct {
	name string
	mode string // error | panic | nil
}

func (f *faultyParser) Name() string { return f.name }

func (f *faultyParser) ParseAll(raw RawOutput) (*DeviceRecord, error) {
	switch f.mode {
	case "panic":
		panic("injected parser panic")
	case "nil":
		return nil, nil
	default:
		return nil, errors.New("injected parser error")
	}
}

// TestParseDeviceOutputEmptyInput 空回显任何设备类型都返回全哨兵记录
func TestParseDeviceOutputEmptyInput(t *testing.T) {
	r := NewRegistry()
	rec := r.ParseDeviceOutput("whatever_type", RawOutput{})

	require.NotNil(t, rec)
	assert.Equal(t, Unknown, rec.Hostname)
	assert.Equal(t, Unknown, rec.Model)
	assert.Equal(t, Unknown, rec.SerialNumber)
	assert.Equal(t, Unknown, rec.SystemSerial)
	assert.Equal(t, Unknown, rec.Version)
	assert.Equal(t, Unknown, rec.Uptime)
	assert.Equal(t, Unknown, rec.BaseMAC)
	assert.NotNil(t, rec.Interfaces, "接口列表应是空切片而非 nil")
	assert.Equal(t, "whatever_type", rec.DeviceType)
}

// TestParseDeviceOutputUnregisteredType 未注册类型走通用解析
func TestParseDeviceOutputUnregisteredType(t *testing.T) {
	r := NewRegistry()
	raw := RawOutput{
		"show_version": "Model: GenericBox-2000\nSerial Number: GB2K-001\nVersion 9.1.4\n",
	}
	rec := r.ParseDeviceOutput("no_such_vendor", raw)

	require.NotNil(t, rec)
	assert.Equal(t, "generic", rec.ParsedWith)
	assert.Equal(t, "GenericBox-2000", rec.Model)
	assert.Equal(t, "GB2K-001", rec.SerialNumber)
	assert.Equal(t, "no_such_vendor", rec.DeviceType, "类型标注保留原始值而不是改写为 generic")
}

// TestParseDeviceOutputParserFailureFallback 厂商解析器出错降级到通用解析
func TestParseDeviceOutputParserFailureFallback(t *testing.T) {
	Register("test_faulty_error", &faultyParser{name: "faulty", mode: "error"})
	Register("test_faulty_panic", &faultyParser{name: "faulty", mode: "panic"})
	Register("test_faulty_nil", &faultyParser{name: "faulty", mode: "nil"})

	raw := RawOutput{"show_version": "Serial Number: FALLBACK-01\nsw-lab#\n"}

	for _, deviceType := range []string{"test_faulty_error", "test_faulty_panic", "test_faulty_nil"} {
		r := NewRegistry()
		rec := r.ParseDeviceOutput(deviceType, raw)

		require.NotNil(t, rec, "设备类型 %s 不应返回 nil", deviceType)
		assert.Equal(t, "generic", rec.ParsedWith, "设备类型 %s 应降级到通用解析", deviceType)
		assert.Equal(t, "FALLBACK-01", rec.SerialNumber)
		assert.Equal(t, "sw-lab", rec.Hostname, "降级路径同样要做主机名提取")
	}
}

// TestParseDeviceOutputGarbageInput 任意垃圾输入都不会崩溃
func TestParseDeviceOutputGarbageInput(t *testing.T) {
	garbage := []RawOutput{
		nil,
		{},
		{"": ""},
		{"cmd": "\x00\x01\x02\xff\xfe"},
		{"version": "\x1b[31m\x1b[0m\r\r\n\r"},
		{"a": "NAME: \"", "b": "PID: , SN:", "c": ">>>###"},
	}
	for _, deviceType := range append([]string{"bogus"}, SupportedDeviceTypes()...) {
		for _, raw := range garbage {
			r := NewRegistry()
			rec := r.ParseDeviceOutput(deviceType, raw)
			require.NotNil(t, rec)
			assert.NotEmpty(t, rec.Hostname, "主机名字段永远有值（最差为哨兵值）")
		}
	}
}

// 只产出空记录、从不提取主机名的假解析器
type hostnameBlindParser struct{}

func (hostnameBlindParser) Name() string { return "blind" }

func (hostnameBlindParser) ParseAll(raw RawOutput) (*DeviceRecord, error) {
	return NewDeviceRecord(), nil
}

// TestParseDeviceOutputHostnameReconciliation 解析器未取到主机名时从提示符补齐
func TestParseDeviceOutputHostnameReconciliation(t *testing.T) {
	Register("test_blind", hostnameBlindParser{})

	r := NewRegistry()
	raw := RawOutput{"show_version": "CORE-01#\nVersion 1.0\n"}
	rec := r.ParseDeviceOutput("test_blind", raw)

	assert.Equal(t, "CORE-01", rec.Hostname)
	stats := r.Hostname.Stats()
	assert.Equal(t, 1, stats.Extracted)
	assert.Equal(t, 0, stats.Failed)

	// 解析器已取到主机名时不再动统计
	r2 := NewRegistry()
	raw2 := RawOutput{"show_version": "hostname already-known\n"}
	rec2 := r2.ParseDeviceOutput("unregistered_vendor", raw2)
	assert.Equal(t, "already-known", rec2.Hostname)
	assert.Equal(t, HostnameStats{}, r2.Hostname.Stats())
}

// TestGenericParseNeverNeedsFallback 通用解析是终点，不会再需要兜底
func TestGenericParseNeverNeedsFallback(t *testing.T) {
	r := NewRegistry()
	inputs := []RawOutput{
		{},
		{"x": "total garbage %$#@!"},
		{"version": "Version: \nModel: \n"},
	}
	for _, raw := range inputs {
		rec := r.GenericParse(raw, "anything")
		require.NotNil(t, rec)
		// 再跑一遍结果等价（幂等，不存在二级降级）
		again := r.GenericParse(raw, "anything")
		assert.Equal(t, rec.Hostname, again.Hostname)
		assert.Equal(t, rec.Model, again.Model)
		assert.Equal(t, rec.SerialNumber, again.SerialNumber)
	}
}

// TestSupportedDeviceTypes 注册表清单有序且包含注册项
func TestSupportedDeviceTypes(t *testing.T) {
	Register("test_zz_type", &faultyParser{name: "zz"})
	types := SupportedDeviceTypes()
	assert.Contains(t, types, "test_zz_type")
	for i := 1; i < len(types); i++ {
		assert.LessOrEqual(t, types[i-1], types[i], "清单应按字典序排序")
	}
}
