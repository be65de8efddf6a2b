package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lunban/lunban/pkg/model"
)

// PresetRepository 轮换制度预设仓储
// 只持久化参数组合，排班计算结果不落库
type PresetRepository struct {
	db DB
}

// NewPresetRepository 创建预设仓储
func NewPresetRepository(db DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// EnsureSchema 创建预设表（幂等）
func (r *PresetRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS regime_presets (
			id UUID PRIMARY KEY,
			org_id UUID NOT NULL,
			name TEXT NOT NULL,
			code TEXT NOT NULL DEFAULT '',
			on_days INT NOT NULL,
			off_days INT NOT NULL,
			induction_days INT NOT NULL,
			total_coverage_days INT NOT NULL,
			remark TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			deleted_at TIMESTAMPTZ
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("创建预设表失败: %w", err)
	}
	return nil
}

// Create 创建预设
func (r *PresetRepository) Create(ctx context.Context, preset *model.RegimePreset) error {
	if preset.ID == uuid.Nil {
		preset.ID = uuid.New()
	}
	now := time.Now()
	preset.CreatedAt = now
	preset.UpdatedAt = now

	query := `
		INSERT INTO regime_presets (
			id, org_id, name, code, on_days, off_days, induction_days,
			total_coverage_days, remark, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		preset.ID, preset.OrgID, preset.Name, preset.Code,
		preset.W, preset.R, preset.I, preset.TotalCoverageDays,
		preset.Remark, preset.IsActive, preset.CreatedAt, preset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("创建预设失败: %w", err)
	}

	return nil
}

// GetByID 根据ID获取预设
func (r *PresetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RegimePreset, error) {
	query := `
		SELECT id, org_id, name, code, on_days, off_days, induction_days,
			total_coverage_days, remark, is_active, created_at, updated_at
		FROM regime_presets
		WHERE id = $1 AND deleted_at IS NULL
	`

	preset := &model.RegimePreset{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&preset.ID, &preset.OrgID, &preset.Name, &preset.Code,
		&preset.W, &preset.R, &preset.I, &preset.TotalCoverageDays,
		&preset.Remark, &preset.IsActive, &preset.CreatedAt, &preset.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询预设失败: %w", err)
	}

	return preset, nil
}

// ListByOrg 查询机构的预设列表
func (r *PresetRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.RegimePreset, error) {
	query := `
		SELECT id, org_id, name, code, on_days, off_days, induction_days,
			total_coverage_days, remark, is_active, created_at, updated_at
		FROM regime_presets
		WHERE org_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("查询预设列表失败: %w", err)
	}
	defer rows.Close()

	var presets []*model.RegimePreset
	for rows.Next() {
		preset := &model.RegimePreset{}
		if err := rows.Scan(
			&preset.ID, &preset.OrgID, &preset.Name, &preset.Code,
			&preset.W, &preset.R, &preset.I, &preset.TotalCoverageDays,
			&preset.Remark, &preset.IsActive, &preset.CreatedAt, &preset.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("扫描预设失败: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历预设失败: %w", err)
	}

	return presets, nil
}

// Update 更新预设
func (r *PresetRepository) Update(ctx context.Context, preset *model.RegimePreset) error {
	preset.UpdatedAt = time.Now()

	query := `
		UPDATE regime_presets SET
			name = $2, code = $3, on_days = $4, off_days = $5, induction_days = $6,
			total_coverage_days = $7, remark = $8, is_active = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		preset.ID, preset.Name, preset.Code, preset.W, preset.R, preset.I,
		preset.TotalCoverageDays, preset.Remark, preset.IsActive, preset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("更新预设失败: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("预设不存在")
	}

	return nil
}

// Delete 软删除预设
func (r *PresetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE regime_presets SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("删除预设失败: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("预设不存在")
	}

	return nil
}
