package model

import (
	"time"
)

// CollectionRun 一次采集批次的运行记录
type CollectionRun struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CollectorID  string    `json:"collector_id" gorm:"type:varchar(64);not null;index"`
	TotalDevices int       `json:"total_devices" gorm:"not null;default:0"`
	Successful   int       `json:"successful" gorm:"not null;default:0"`
	Failed       int       `json:"failed" gorm:"not null;default:0"`
	Summary      string    `json:"summary" gorm:"type:text"` // CollectionSummary JSON
	Status       string    `json:"status" gorm:"type:varchar(16);not null;default:'running'"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     int64     `json:"duration"` // 毫秒
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 表名
func (CollectionRun) TableName() string {
	return "collection_runs"
}

// 运行状态枚举
const (
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
)

// DeviceResult 单台设备采集结果的落库记录
type DeviceResult struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	RunID            string    `json:"run_id" gorm:"type:varchar(64);not null;index"`
	Hostname         string    `json:"hostname" gorm:"type:varchar(128)"`
	IPAddress        string    `json:"ip_address" gorm:"type:varchar(64);not null"`
	DeviceType       string    `json:"device_type" gorm:"type:varchar(64)"`
	ConnectionStatus string    `json:"connection_status" gorm:"type:varchar(16);not null"`
	ParsedJSON       string    `json:"parsed_json" gorm:"type:text"` // DeviceRecord JSON
	Errors           string    `json:"errors" gorm:"type:text"`
	CollectionTime   string    `json:"collection_time" gorm:"type:varchar(40)"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 表名
func (DeviceResult) TableName() string {
	return "device_results"
}
