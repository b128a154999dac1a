package model

import (
	"time"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// 连接状态
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusConnected = "connected"
)

// DeviceInfo 设备描述（由设备清单/连接层提供，随流水线透传）
type DeviceInfo struct {
	Hostname         string    `json:"hostname" yaml:"hostname"`
	IPAddress        string    `json:"ip_address" yaml:"ip_address"`
	Port             int       `json:"port,omitempty" yaml:"port"`
	Username         string    `json:"username,omitempty" yaml:"username"`
	Password         string    `json:"password,omitempty" yaml:"password"`
	DeviceType       string    `json:"device_type" yaml:"device_type"`
	ConnectionStatus string    `json:"connection_status" yaml:"-"`
	Location         string    `json:"location,omitempty" yaml:"location"`
	Description      string    `json:"description,omitempty" yaml:"description"`
	Timestamp        time.Time `json:"timestamp,omitempty" yaml:"-"`
}

// CollectionResult 单台设备的采集结果，入列后不再修改
type CollectionResult struct {
	DeviceInfo     DeviceInfo          `json:"device_info"`
	ParsedData     *parse.DeviceRecord `json:"parsed_data"`
	Errors         []string            `json:"errors"`
	CollectionTime string              `json:"collection_time"` // ISO-8601
}

// CollectionSummary 一次采集批次的汇总统计
type CollectionSummary struct {
	TotalDevices          int            `json:"total_devices"`
	Successful            int            `json:"successful"`
	Failed                int            `json:"failed"`
	SuccessRate           float64        `json:"success_rate"`
	DeviceTypes           map[string]int `json:"device_types"`
	StatusCounts          map[string]int `json:"status_counts"`
	DiscoveredHostnames   []string       `json:"discovered_hostnames"`
	HostnameDiscoveryRate float64        `json:"hostname_discovery_rate"`
	CollectionTime        string         `json:"collection_time"`
}
