package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel 基础模型（包含通用字段）
type BaseModel struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// NewBaseModel 创建新的基础模型
func NewBaseModel() BaseModel {
	now := time.Now()
	return BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RegimePreset 轮换制度预设
// 保存机构常用的 W/R/I 参数组合，计算出的排班结果本身不做持久化
type RegimePreset struct {
	BaseModel
	OrgID             uuid.UUID `json:"org_id" db:"org_id"`
	Name              string    `json:"name" db:"name"`
	Code              string    `json:"code" db:"code"`
	W                 int       `json:"w" db:"on_days"`
	R                 int       `json:"r" db:"off_days"`
	I                 int       `json:"i" db:"induction_days"`
	TotalCoverageDays int       `json:"total_coverage_days" db:"total_coverage_days"`
	Remark            string    `json:"remark,omitempty" db:"remark"`
	IsActive          bool      `json:"is_active" db:"is_active"`
}

// Regime 返回预设对应的制度参数（已钳制）
func (p *RegimePreset) Regime() Regime {
	return Regime{
		W:                 p.W,
		R:                 p.R,
		I:                 p.I,
		TotalCoverageDays: p.TotalCoverageDays,
	}.Clamp()
}
