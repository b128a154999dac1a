package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netinventorypro/netinventorypro/addone/parse"
	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/internal/model"
)

// fakeRunner 按 IP 返回预置回显的假命令执行器
type fakeRunner struct {
	outputs map[string]parse.RawOutput
	errs    map[string]error
}

func (f *fakeRunner) RunDeviceCommands(ctx context.Context, device *model.DeviceInfo) (parse.RawOutput, []string, error) {
	if err, ok := f.errs[device.IPAddress]; ok {
		return nil, nil, err
	}
	return f.outputs[device.IPAddress], nil, nil
}

func testConfig(concurrent int) *config.Config {
	return &config.Config{
		Collector: config.CollectorConfig{
			ID:                     "test-collector",
			Concurrent:             concurrent,
			FallbackHostnamePrefix: "device-",
		},
		Storage: config.StorageConfig{Backend: "none"},
	}
}

// TestCollectSuccessAndFailure 单台失败不影响其余设备，且失败设备仍有完整结果
func TestCollectSuccessAndFailure(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]parse.RawOutput{
			"10.0.0.1": {"show_version": "core-sw-01#\nVersion: 1.2.3\nSerial Number: SN-001\n"},
		},
		errs: map[string]error{
			"10.0.0.2": errors.New("connection refused"),
		},
	}
	c := NewInventoryCollector(testConfig(2), runner)

	devices := []model.DeviceInfo{
		{IPAddress: "10.0.0.1", DeviceType: "some_vendor"},
		{IPAddress: "10.0.0.2", DeviceType: "some_vendor"},
	}
	results := c.Collect(context.Background(), devices, nil)
	require.Len(t, results, 2)

	byIP := map[string]*model.CollectionResult{}
	for _, r := range results {
		byIP[r.DeviceInfo.IPAddress] = r
	}

	ok := byIP["10.0.0.1"]
	require.NotNil(t, ok)
	assert.Equal(t, model.StatusSuccess, ok.DeviceInfo.ConnectionStatus)
	assert.Equal(t, "core-sw-01", ok.DeviceInfo.Hostname)
	assert.Equal(t, "SN-001", ok.ParsedData.SerialNumber)
	assert.NotNil(t, ok.Errors, "成功结果的错误列表是空切片而非 nil")
	assert.Empty(t, ok.Errors)
	assert.NotEmpty(t, ok.CollectionTime)

	failed := byIP["10.0.0.2"]
	require.NotNil(t, failed)
	assert.Equal(t, model.StatusFailed, failed.DeviceInfo.ConnectionStatus)
	require.NotNil(t, failed.ParsedData, "失败设备同样要有解析记录")
	assert.Equal(t, "device-10-0-0-2", failed.DeviceInfo.Hostname, "连不上的设备用 IP 兜底主机名")
	assert.Contains(t, failed.Errors, "connection refused")
}

// TestCollectProgressMonotonic 进度回调串行触发且 current 单调递增
func TestCollectProgressMonotonic(t *testing.T) {
	outputs := make(map[string]parse.RawOutput)
	devices := make([]model.DeviceInfo, 0, 10)
	for i := 0; i < 10; i++ {
		ip := fmt.Sprintf("10.1.0.%d", i+1)
		outputs[ip] = parse.RawOutput{"show_version": "Version: 1.0\n"}
		devices = append(devices, model.DeviceInfo{IPAddress: ip, DeviceType: "t"})
	}
	c := NewInventoryCollector(testConfig(4), &fakeRunner{outputs: outputs})

	var (
		currents []int
		phases   []string
	)
	// 回调由采集器串行触发，这里不需要加锁
	results := c.Collect(context.Background(), devices, func(phase string, total, current int, message string) {
		assert.Equal(t, 10, total)
		currents = append(currents, current)
		phases = append(phases, phase)
	})
	require.Len(t, results, 10)

	require.Len(t, currents, 11, "每台设备一次 + 最终 complete 一次")
	for i := 0; i < 10; i++ {
		assert.Equal(t, i+1, currents[i], "current 必须逐一递增")
		assert.Equal(t, PhaseCollecting, phases[i])
	}
	assert.Equal(t, 10, currents[10])
	assert.Equal(t, PhaseComplete, phases[10])
}

// TestCollectProgressPanicContained 回调方 panic 不中断采集批次
func TestCollectProgressPanicContained(t *testing.T) {
	outputs := map[string]parse.RawOutput{
		"10.2.0.1": {"show_version": "v1\n"},
		"10.2.0.2": {"show_version": "v2\n"},
	}
	c := NewInventoryCollector(testConfig(1), &fakeRunner{outputs: outputs})

	devices := []model.DeviceInfo{
		{IPAddress: "10.2.0.1", DeviceType: "t"},
		{IPAddress: "10.2.0.2", DeviceType: "t"},
	}
	results := c.Collect(context.Background(), devices, func(phase string, total, current int, message string) {
		panic("callback destroyed")
	})
	assert.Len(t, results, 2, "回调 panic 被吸收，所有设备仍产出结果")
}

// TestSummarizeZeroSafe 空结果集的比率为 0 而不是 NaN
func TestSummarizeZeroSafe(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalDevices)
	assert.Equal(t, 0.0, s.SuccessRate)
	assert.Equal(t, 0.0, s.HostnameDiscoveryRate)
	assert.NotNil(t, s.DeviceTypes)
	assert.NotNil(t, s.DiscoveredHostnames)
}

// TestSummarizeFallbackNotDiscovered 兜底主机名不算发现
func TestSummarizeFallbackNotDiscovered(t *testing.T) {
	results := []*model.CollectionResult{}
	for i := 1; i <= 4; i++ {
		ip := fmt.Sprintf("10.3.0.%d", i)
		results = append(results, &model.CollectionResult{
			DeviceInfo: model.DeviceInfo{
				IPAddress:        ip,
				Hostname:         fmt.Sprintf("device-10-3-0-%d", i),
				DeviceType:       "cisco_ios",
				ConnectionStatus: model.StatusSuccess,
			},
		})
	}
	s := Summarize(results)
	assert.Equal(t, 100.0, s.SuccessRate, "全部连接成功")
	assert.Equal(t, 0.0, s.HostnameDiscoveryRate, "全是 IP 兜底主机名时发现率为 0")
	assert.Empty(t, s.DiscoveredHostnames)
}

// TestSummarizeCounts 按类型与状态计数，类型保留原始标注
func TestSummarizeCounts(t *testing.T) {
	mk := func(ip, hostname, deviceType, status string) *model.CollectionResult {
		return &model.CollectionResult{DeviceInfo: model.DeviceInfo{
			IPAddress: ip, Hostname: hostname, DeviceType: deviceType, ConnectionStatus: status,
		}}
	}
	results := []*model.CollectionResult{
		mk("10.4.0.1", "sw1", "cisco_ios", model.StatusSuccess),
		mk("10.4.0.2", "sw2", "cisco_ios", model.StatusSuccess),
		mk("10.4.0.3", "Unknown", "weird_vendor", model.StatusSuccess),
		mk("10.4.0.4", "device-10-4-0-4", "weird_vendor", model.StatusFailed),
	}
	s := Summarize(results)

	assert.Equal(t, 4, s.TotalDevices)
	assert.Equal(t, 3, s.Successful)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 75.0, s.SuccessRate)
	// 无专用解析器的类型保留原始标注，不改写为 generic
	assert.Equal(t, map[string]int{"cisco_ios": 2, "weird_vendor": 2}, s.DeviceTypes)
	assert.Equal(t, map[string]int{model.StatusSuccess: 3, model.StatusFailed: 1}, s.StatusCounts)
	assert.Equal(t, 50.0, s.HostnameDiscoveryRate, "哨兵值与兜底主机名都不算发现")
	assert.Equal(t, []string{"sw1 (10.4.0.1)", "sw2 (10.4.0.2)"}, s.DiscoveredHostnames)
}

// TestFallbackHostname IP 到兜底主机名的确定性映射
func TestFallbackHostname(t *testing.T) {
	c := NewInventoryCollector(testConfig(1), &fakeRunner{})

	assert.Equal(t, "device-192-168-1-10", c.FallbackHostname("192.168.1.10"))
	assert.Equal(t, "device-fe80--1", c.FallbackHostname("fe80::1"))

	assert.True(t, IsFallbackHostname("device-192-168-1-10"))
	assert.False(t, IsFallbackHostname("device-lab-core"))
	assert.False(t, IsFallbackHostname("core-sw-01"))
	assert.False(t, IsFallbackHostname("Unknown"))
}
