package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/stats"
)

// CoverageStatsRequest 覆盖率统计请求
type CoverageStatsRequest struct {
	Schedule *model.ScheduleResult `json:"schedule"`
}

// GetCoverageHandler 覆盖率分析
// POST /api/v1/stats/coverage
func GetCoverageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST请求"))
		return
	}

	var req CoverageStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "请求体解析失败"))
		return
	}
	if req.Schedule == nil {
		respondError(w, errors.InvalidInput("schedule", "缺少排班结果"))
		return
	}

	analyzer := stats.NewRotationAnalyzer()
	respondJSON(w, http.StatusOK, analyzer.Analyze(req.Schedule))
}
