// Package cli 提供命令行入口
package cli

import (
	"github.com/lunban/lunban/pkg/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion 设置版本号（由 main 注入）
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "lunban",
	Short: "三班两运转排班引擎",
	Long: `lunban 计算三个班组在 "上W休R" 制度下的轮换排班：
自首个顶岗日起，每天恰好两个班组在岗生产，禁止三班同时顶岗。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Config{
			Level:  logLevel,
			Format: "console",
		})
	},
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "日志级别 (debug/info/warn/error)")
	rootCmd.Version = version
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}
