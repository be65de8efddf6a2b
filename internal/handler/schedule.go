// Package handler 提供HTTP请求处理器
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lunban/lunban/internal/metrics"
	"github.com/lunban/lunban/pkg/engine"
	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/validator"
)

// ScheduleHandler 排班处理器
type ScheduleHandler struct {
	builder *engine.Builder
	timeout time.Duration
}

// NewScheduleHandler 创建排班处理器
func NewScheduleHandler(timeout time.Duration) *ScheduleHandler {
	return &ScheduleHandler{
		builder: engine.NewBuilder(),
		timeout: timeout,
	}
}

// BuildRequest 排班构建请求
// 数值字段接受任意浮点输入，越界和非数值一律钳制
type BuildRequest struct {
	W                 float64 `json:"w"`
	R                 float64 `json:"r"`
	I                 float64 `json:"i"`
	TotalCoverageDays float64 `json:"total_coverage_days"`
}

// Regime 转换为钳制后的制度参数
func (req *BuildRequest) Regime() model.Regime {
	return model.Regime{
		W:                 model.ClampFloat(req.W, model.MinOnDays, model.MaxOnDays),
		R:                 model.ClampFloat(req.R, model.MinOffDays, model.MaxOffDays),
		I:                 model.ClampFloat(req.I, model.MinInduct, model.MaxInduct),
		TotalCoverageDays: model.ClampFloat(req.TotalCoverageDays, model.MinCoverage, model.MaxCoverage),
	}
}

// BuildResponse 排班构建响应
type BuildResponse struct {
	Success  bool                  `json:"success"`
	Schedule *model.ScheduleResult `json:"schedule"`
	Alerts   []validator.Alert     `json:"alerts"`
	Duration string                `json:"duration"`
}

// Build 构建排班
// POST /api/v1/schedule/build
func (h *ScheduleHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST请求"))
		return
	}

	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "请求体解析失败"))
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := h.builder.Build(ctx, req.Regime())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeCanceled, "排班构建被取消"))
		return
	}
	duration := time.Since(start)

	alerts := validator.Validate(result)
	recordBuildMetrics(result, alerts, duration)

	respondJSON(w, http.StatusOK, BuildResponse{
		Success:  result.Diagnostics.ThreeProducingDays == 0 && len(alerts) == 0,
		Schedule: result,
		Alerts:   alerts,
		Duration: duration.String(),
	})
}

// ValidateRequest 排班校验请求
type ValidateRequest struct {
	Schedule *model.ScheduleResult `json:"schedule"`
}

// ValidateResponse 排班校验响应
type ValidateResponse struct {
	Valid    bool              `json:"valid"`
	Alerts   []validator.Alert `json:"alerts"`
	Messages []string          `json:"messages"`
}

// Validate 校验排班
// POST /api/v1/schedule/validate
func (h *ScheduleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST请求"))
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "请求体解析失败"))
		return
	}
	if req.Schedule == nil {
		respondError(w, errors.InvalidInput("schedule", "缺少排班结果"))
		return
	}

	alerts := validator.Validate(req.Schedule)
	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid:    len(alerts) == 0,
		Alerts:   alerts,
		Messages: validator.Messages(alerts),
	})
}

// Legend 返回状态图例
// GET /api/v1/schedule/legend
func (h *ScheduleHandler) Legend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET请求"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"legend": model.Legend(),
	})
}

// recordBuildMetrics 记录构建相关指标
func recordBuildMetrics(result *model.ScheduleResult, alerts []validator.Alert, duration time.Duration) {
	diag := result.Diagnostics
	metrics.RecordScheduleBuild(diag.IsPerfect, diag.Score, 0, duration)
	if result.Days > 0 {
		metrics.SetCoverageRate(float64(result.CoveredDays()) / float64(result.Days) * 100)
	}

	byType := make(map[validator.AlertType]int)
	for _, a := range alerts {
		byType[a.Type]++
	}
	for t, n := range byType {
		metrics.RecordValidationAlerts(string(t), n)
	}
}

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError 返回错误响应
func respondError(w http.ResponseWriter, err *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"code":    err.Code,
		"message": err.Message,
		"details": err.Details,
	})
}
