// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
)

// DB 数据库操作接口（由 internal/database.DB 实现）
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
