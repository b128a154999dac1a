package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/netinventorypro/netinventorypro/addone/parse"
	"github.com/netinventorypro/netinventorypro/internal/database"
	"github.com/netinventorypro/netinventorypro/internal/model"
	"github.com/netinventorypro/netinventorypro/internal/service"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InventoryHandler 采集处理器
type InventoryHandler struct {
	collector *service.InventoryCollector
}

// NewInventoryHandler 创建采集处理器
func NewInventoryHandler(collector *service.InventoryCollector) *InventoryHandler {
	return &InventoryHandler{collector: collector}
}

// CollectRequest 采集请求
type CollectRequest struct {
	Devices []model.DeviceInfo `json:"devices" binding:"required"`
}

// CollectResponse 采集响应
type CollectResponse struct {
	Results []*model.CollectionResult `json:"results"`
	Summary *model.CollectionSummary  `json:"summary"`
}

// Collect 对一批设备执行采集并返回结果与汇总
func (h *InventoryHandler) Collect(c *gin.Context) {
	var request CollectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Invalid request parameters", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_PARAMS",
			Message: "请求参数无效: " + err.Error(),
		})
		return
	}
	if len(request.Devices) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "EMPTY_DEVICES",
			Message: "设备清单为空",
		})
		return
	}

	results := h.collector.Collect(c.Request.Context(), request.Devices, nil)
	c.JSON(http.StatusOK, CollectResponse{
		Results: results,
		Summary: service.Summarize(results),
	})
}

// Platforms 返回已注册解析器的设备类型清单
func (h *InventoryHandler) Platforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"device_types": parse.SupportedDeviceTypes(),
	})
}

// GetRun 查询一次采集批次的运行记录
func (h *InventoryHandler) GetRun(c *gin.Context) {
	db := database.GetDB()
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    "NO_DATABASE",
			Message: "数据库未初始化",
		})
		return
	}
	runID := c.Param("run_id")
	var run model.CollectionRun
	if err := db.First(&run, "id = ?", runID).Error; err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "RUN_NOT_FOUND",
			Message: "运行记录不存在: " + runID,
		})
		return
	}
	var results []model.DeviceResult
	if err := db.Where("run_id = ?", runID).Find(&results).Error; err != nil {
		logger.Error("Failed to load device results", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{
		"run":     run,
		"devices": results,
	})
}

// Health 健康检查
func (h *InventoryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
