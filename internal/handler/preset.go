package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/lunban/lunban/internal/repository"
	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
)

// PresetHandler 制度预设处理器
type PresetHandler struct {
	repo *repository.PresetRepository
}

// NewPresetHandler 创建预设处理器
func NewPresetHandler(repo *repository.PresetRepository) *PresetHandler {
	return &PresetHandler{repo: repo}
}

// PresetInput 预设输入
type PresetInput struct {
	OrgID             string `json:"org_id"`
	Name              string `json:"name"`
	Code              string `json:"code,omitempty"`
	W                 int    `json:"w"`
	R                 int    `json:"r"`
	I                 int    `json:"i"`
	TotalCoverageDays int    `json:"total_coverage_days"`
	Remark            string `json:"remark,omitempty"`
}

// Handle 预设集合入口
// GET  /api/v1/presets?org_id=xxx  列出机构预设
// POST /api/v1/presets             创建预设
func (h *PresetHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, errors.New(errors.CodeDatabaseError, "预设存储未启用"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		respondError(w, errors.New(errors.CodeInvalidInput, "不支持的请求方法"))
	}
}

// list 列出机构预设
func (h *PresetHandler) list(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(r.URL.Query().Get("org_id"))
	if err != nil {
		respondError(w, errors.InvalidInput("org_id", "必须为合法UUID"))
		return
	}

	presets, err := h.repo.ListByOrg(r.Context(), orgID)
	if err != nil {
		respondError(w, errors.DatabaseError("查询预设列表", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"presets": presets,
		"total":   len(presets),
	})
}

// create 创建预设
// 参数在入库前即做钳制，保证库中不存在越界制度
func (h *PresetHandler) create(w http.ResponseWriter, r *http.Request) {
	var input PresetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "请求体解析失败"))
		return
	}
	if input.Name == "" {
		respondError(w, errors.InvalidInput("name", "不能为空"))
		return
	}
	orgID, err := uuid.Parse(input.OrgID)
	if err != nil {
		respondError(w, errors.InvalidInput("org_id", "必须为合法UUID"))
		return
	}

	regime := model.Regime{
		W:                 input.W,
		R:                 input.R,
		I:                 input.I,
		TotalCoverageDays: input.TotalCoverageDays,
	}.Clamp()

	preset := &model.RegimePreset{
		BaseModel:         model.NewBaseModel(),
		OrgID:             orgID,
		Name:              input.Name,
		Code:              input.Code,
		W:                 regime.W,
		R:                 regime.R,
		I:                 regime.I,
		TotalCoverageDays: regime.TotalCoverageDays,
		Remark:            input.Remark,
		IsActive:          true,
	}

	if err := h.repo.Create(r.Context(), preset); err != nil {
		respondError(w, errors.DatabaseError("创建预设", err))
		return
	}

	respondJSON(w, http.StatusCreated, preset)
}
