package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/netinventorypro/netinventorypro/internal/database"
	"github.com/netinventorypro/netinventorypro/internal/model"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

// RunStore 采集批次的运行记录落库
// 数据库未初始化（纯内存模式/测试）时所有操作退化为只生成 ID
type RunStore struct{}

// NewRunStore 创建运行记录存储
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Begin 创建一条运行记录并返回批次 ID
func (s *RunStore) Begin(collectorID string, totalDevices int) string {
	runID := uuid.New().String()
	db := database.GetDB()
	if db == nil {
		return runID
	}
	run := &model.CollectionRun{
		ID:           runID,
		CollectorID:  collectorID,
		TotalDevices: totalDevices,
		Status:       model.RunStatusRunning,
		StartTime:    time.Now(),
	}
	if err := db.Create(run).Error; err != nil {
		logger.Warnf("failed to persist collection run %s: %v", runID, err)
	}
	return runID
}

// SaveResult 落库单台设备的采集结果
func (s *RunStore) SaveResult(runID string, result *model.CollectionResult) {
	db := database.GetDB()
	if db == nil {
		return
	}
	parsedJSON, _ := json.Marshal(result.ParsedData)
	row := &model.DeviceResult{
		ID:               uuid.New().String(),
		RunID:            runID,
		Hostname:         result.DeviceInfo.Hostname,
		IPAddress:        result.DeviceInfo.IPAddress,
		DeviceType:       result.DeviceInfo.DeviceType,
		ConnectionStatus: result.DeviceInfo.ConnectionStatus,
		ParsedJSON:       string(parsedJSON),
		Errors:           strings.Join(result.Errors, "\n"),
		CollectionTime:   result.CollectionTime,
	}
	if err := db.Create(row).Error; err != nil {
		logger.Warnf("failed to persist device result %s/%s: %v", runID, result.DeviceInfo.IPAddress, err)
	}
}

// Finish 写回汇总并关闭运行记录
func (s *RunStore) Finish(runID string, summary *model.CollectionSummary) {
	db := database.GetDB()
	if db == nil {
		return
	}
	summaryJSON, _ := json.Marshal(summary)
	now := time.Now()
	updates := map[string]interface{}{
		"successful": summary.Successful,
		"failed":     summary.Failed,
		"summary":    string(summaryJSON),
		"status":     model.RunStatusFinished,
		"end_time":   now,
	}
	var run model.CollectionRun
	if err := db.First(&run, "id = ?", runID).Error; err == nil {
		updates["duration"] = now.Sub(run.StartTime).Milliseconds()
	}
	if err := db.Model(&model.CollectionRun{}).Where("id = ?", runID).Updates(updates).Error; err != nil {
		logger.Warnf("failed to finish collection run %s: %v", runID, err)
	}
}
