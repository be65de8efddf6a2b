package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Name != "lunban" {
		t.Errorf("App.Name = %q, 期望 lunban", cfg.App.Name)
	}
	if cfg.App.Port != 7021 {
		t.Errorf("App.Port = %d, 期望 7021", cfg.App.Port)
	}
	if cfg.Engine.SolveTimeout != 30*time.Second {
		t.Errorf("Engine.SolveTimeout = %v, 期望 30s", cfg.Engine.SolveTimeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, 期望启用且路径为 /metrics", cfg.Metrics)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ENGINE_SOLVE_TIMEOUT", "5s")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Port != 9000 {
		t.Errorf("App.Port = %d, 期望 9000", cfg.App.Port)
	}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Errorf("环境判断错误: env=%q", cfg.App.Env)
	}
	if cfg.Engine.SolveTimeout != 5*time.Second {
		t.Errorf("Engine.SolveTimeout = %v, 期望 5s", cfg.Engine.SolveTimeout)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Database.MaxOpenConns = %d, 期望 50", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("ENGINE_SOLVE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.App.Port != 7021 {
		t.Errorf("非法端口应回退默认值, 实际 %d", cfg.App.Port)
	}
	if cfg.Engine.SolveTimeout != 30*time.Second {
		t.Errorf("非法超时应回退默认值, 实际 %v", cfg.Engine.SolveTimeout)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.local", Port: 5433, Name: "lunban",
		User: "app", Password: "secret", SSLMode: "require",
	}
	expected := "host=db.local port=5433 user=app password=secret dbname=lunban sslmode=require"
	if got := c.DSN(); got != expected {
		t.Errorf("DSN = %q, 期望 %q", got, expected)
	}
}
