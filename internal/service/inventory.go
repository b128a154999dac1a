package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/netinventorypro/netinventorypro/addone/parse"
	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/internal/model"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

// ProgressFunc 进度回调：阶段、总数、已完成数、描述
// 回调由采集器串行触发，current 单调递增；回调内部 panic 不会中断采集
type ProgressFunc func(phase string, total, current int, message string)

// 采集阶段
const (
	PhaseCollecting = "collecting"
	PhaseComplete   = "complete"
)

// InventoryCollector 库存采集器：驱动 获取回显->解析->主机名兜底->汇总 流水线
type InventoryCollector struct {
	cfg      *config.Config
	runner   CommandRunner
	rawStore RawStore
	runStore *RunStore
}

// NewInventoryCollector 创建采集器
func NewInventoryCollector(cfg *config.Config, runner CommandRunner) *InventoryCollector {
	return &InventoryCollector{
		cfg:      cfg,
		runner:   runner,
		rawStore: NewRawStore(cfg),
		runStore: NewRunStore(),
	}
}

// Collect 对一批设备执行采集
// 设备之间相互独立：单台失败不影响其余设备；并发度受配置约束；
// 无论成功失败，每台设备都会产出一条完整的 CollectionResult
func (c *InventoryCollector) Collect(ctx context.Context, devices []model.DeviceInfo, progress ProgressFunc) []*model.CollectionResult {
	total := len(devices)
	results := make([]*model.CollectionResult, 0, total)
	registry := parse.NewRegistry()
	runID := c.runStore.Begin(c.cfg.Collector.ID, total)

	var (
		mu        sync.Mutex
		completed int
	)
	concurrent := c.cfg.Collector.Concurrent
	if concurrent <= 0 {
		concurrent = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrent)
	for i := range devices {
		device := devices[i]
		g.Go(func() error {
			result := c.collectDevice(gctx, registry, runID, &device)

			// 回调在锁内触发，保证 current 对消费方单调递增
			mu.Lock()
			results = append(results, result)
			completed++
			c.runStore.SaveResult(runID, result)
			notifyProgress(progress, PhaseCollecting, total, completed,
				fmt.Sprintf("Collected %s (%s)", result.DeviceInfo.Hostname, result.DeviceInfo.IPAddress))
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	notifyProgress(progress, PhaseComplete, total, total, "Collection complete")

	summary := c.Summarize(results)
	c.runStore.Finish(runID, summary)
	stats := registry.Hostname.Stats()
	logger.Infof("collection run %s finished: %d devices, %d ok, %d failed, hostname stats %d/%d",
		runID, summary.TotalDevices, summary.Successful, summary.Failed, stats.Extracted, stats.Extracted+stats.Failed)
	return results
}

// collectDevice 单台设备的采集状态机，出口只有成功/失败两种完整结果
func (c *InventoryCollector) collectDevice(ctx context.Context, registry *parse.Registry, runID string, device *model.DeviceInfo) *model.CollectionResult {
	device.Timestamp = time.Now()

	raw, cmdErrs, err := c.runner.RunDeviceCommands(ctx, device)
	if err != nil {
		logger.Errorf("device %s collection failed: %v", device.IPAddress, err)
		device.ConnectionStatus = model.StatusFailed
		rec := registry.GenericParse(raw, device.DeviceType)
		if !rec.HostnameKnown() {
			rec.Hostname = c.FallbackHostname(device.IPAddress)
		}
		device.Hostname = rec.Hostname
		errs := append([]string{}, cmdErrs...)
		errs = append(errs, err.Error())
		return &model.CollectionResult{
			DeviceInfo:     *device,
			ParsedData:     rec,
			Errors:         errs,
			CollectionTime: time.Now().Format(time.RFC3339),
		}
	}

	c.archiveRaw(ctx, runID, device, raw)

	rec := registry.ParseDeviceOutput(device.DeviceType, raw)
	if !rec.HostnameKnown() {
		rec.Hostname = c.FallbackHostname(device.IPAddress)
	}
	device.Hostname = rec.Hostname
	device.ConnectionStatus = model.StatusSuccess

	if cmdErrs == nil {
		cmdErrs = []string{}
	}
	return &model.CollectionResult{
		DeviceInfo:     *device,
		ParsedData:     rec,
		Errors:         cmdErrs,
		CollectionTime: time.Now().Format(time.RFC3339),
	}
}

// archiveRaw 把原始回显写入归档存储，失败只记日志不影响采集
func (c *InventoryCollector) archiveRaw(ctx context.Context, runID string, device *model.DeviceInfo, raw parse.RawOutput) {
	if c.rawStore == nil {
		return
	}
	for _, name := range raw.Keys() {
		meta := RawMeta{
			RunID:      runID,
			DeviceIP:   device.IPAddress,
			DeviceName: device.Hostname,
			Command:    name,
		}
		if _, err := c.rawStore.Write(ctx, meta, raw[name]); err != nil {
			logger.Warnf("failed to archive raw output %s/%s: %v", device.IPAddress, name, err)
		}
	}
}

// notifyProgress 串行触发进度回调并吸收回调方的 panic
// （GUI 控件在采集中途销毁等情况不应中断批次）
func notifyProgress(progress ProgressFunc, phase string, total, current int, message string) {
	if progress == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Warnf("progress callback panicked: %v", p)
		}
	}()
	progress(phase, total, current, message)
}

// FallbackHostname 由 IP 生成确定性的兜底主机名（device-a-b-c-d 形式）
func (c *InventoryCollector) FallbackHostname(ip string) string {
	prefix := c.cfg.Collector.FallbackHostnamePrefix
	if prefix == "" {
		prefix = "device-"
	}
	return prefix + strings.NewReplacer(".", "-", ":", "-").Replace(ip)
}

var fallbackHostnameRe = regexp.MustCompile(`^device-\d{1,3}-\d{1,3}-\d{1,3}-\d{1,3}$`)

// IsFallbackHostname 判断主机名是否为 IP 兜底形式
func IsFallbackHostname(name string) bool {
	return fallbackHostnameRe.MatchString(name)
}

// Summarize 对一批采集结果做纯聚合统计
func (c *InventoryCollector) Summarize(results []*model.CollectionResult) *model.CollectionSummary {
	return Summarize(results)
}

// Summarize 汇总统计：成功/失败计数、按类型与状态计数、
// 主机名发现清单与发现率；除零场景一律返回 0
func Summarize(results []*model.CollectionResult) *model.CollectionSummary {
	summary := &model.CollectionSummary{
		TotalDevices:        len(results),
		DeviceTypes:         make(map[string]int),
		StatusCounts:        make(map[string]int),
		DiscoveredHostnames: []string{},
		CollectionTime:      time.Now().Format(time.RFC3339),
	}

	discovered := 0
	for _, r := range results {
		if r.DeviceInfo.ConnectionStatus == model.StatusSuccess {
			summary.Successful++
		}
		summary.DeviceTypes[r.DeviceInfo.DeviceType]++
		summary.StatusCounts[r.DeviceInfo.ConnectionStatus]++

		name := r.DeviceInfo.Hostname
		if name != "" && name != parse.Unknown && !IsFallbackHostname(name) {
			discovered++
			summary.DiscoveredHostnames = append(summary.DiscoveredHostnames,
				fmt.Sprintf("%s (%s)", name, r.DeviceInfo.IPAddress))
		}
	}
	summary.Failed = summary.TotalDevices - summary.Successful
	if summary.TotalDevices > 0 {
		summary.SuccessRate = float64(summary.Successful) / float64(summary.TotalDevices) * 100
		summary.HostnameDiscoveryRate = float64(discovered) / float64(summary.TotalDevices) * 100
	}
	return summary
}
