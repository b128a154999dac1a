package parse

import (
	"sort"
	"sync"

	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]VendorParser{}
)

// Register 注册厂商解析器（平台包 init 时调用）
func Register(deviceType string, parser VendorParser) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[deviceType] = parser
}

// Lookup 获取指定设备类型的解析器，未注册返回 nil
func Lookup(deviceType string) VendorParser {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[deviceType]
}

// SupportedDeviceTypes 返回已注册的设备类型清单（排序）
func SupportedDeviceTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Registry 一次采集批次使用的解析调度器
// 持有本批次的主机名提取统计，每批次应创建新实例
type Registry struct {
	generic  GenericParser
	Hostname HostnameResolver
}

// NewRegistry 创建解析调度器
func NewRegistry() *Registry {
	return &Registry{}
}

// ParseDeviceOutput 按设备类型调度解析
// 失败边界：厂商解析器抛出的任何错误或 panic 都在此处拦截并降级到
// 通用解析器，设备绝不因解析器缺陷而从批次中丢失
func (r *Registry) ParseDeviceOutput(deviceType string, raw RawOutput) *DeviceRecord {
	parser := Lookup(deviceType)

	var rec *DeviceRecord
	if parser == nil {
		logger.Warnf("no parser registered for device type %q, using generic parser", deviceType)
		rec = r.generic.Parse(raw, deviceType)
	} else {
		rec = r.parseGuarded(parser, deviceType, raw)
	}

	// 主机名兜底：解析器没拿到主机名时，对最可用的原始文本再试一轮
	if !rec.HostnameKnown() {
		rec.Hostname = r.Hostname.Extract(rawTextForExtraction(raw))
	}
	if rec.DeviceType == "" {
		rec.DeviceType = deviceType
	}
	return rec
}

// parseGuarded 调用厂商解析器并拦截错误与 panic
func (r *Registry) parseGuarded(parser VendorParser, deviceType string, raw RawOutput) (rec *DeviceRecord) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("parser %s panicked for device type %s: %v", parser.Name(), deviceType, p)
			rec = r.generic.Parse(raw, deviceType)
		}
	}()

	parsed, err := parser.ParseAll(raw)
	if err != nil {
		logger.Errorf("parser %s failed for device type %s: %v", parser.Name(), deviceType, err)
		return r.generic.Parse(raw, deviceType)
	}
	if parsed == nil {
		logger.Errorf("parser %s returned nil record for device type %s", parser.Name(), deviceType)
		return r.generic.Parse(raw, deviceType)
	}
	if parsed.ParsedWith == "" {
		parsed.ParsedWith = parser.Name()
	}
	return parsed
}

// GenericParse 直接走通用解析路径（采集器失败路径使用）
func (r *Registry) GenericParse(raw RawOutput, deviceType string) *DeviceRecord {
	return r.generic.Parse(raw, deviceType)
}
