package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lunban/lunban/pkg/engine"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/validator"
	"github.com/spf13/cobra"
)

var buildFlags struct {
	w        int
	r        int
	i        int
	coverage int
	jsonOut  bool
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "构建排班并打印结果",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := engine.NewBuilder()
		result, err := builder.Build(context.Background(), model.Regime{
			W:                 buildFlags.w,
			R:                 buildFlags.r,
			I:                 buildFlags.i,
			TotalCoverageDays: buildFlags.coverage,
		})
		if err != nil {
			return err
		}

		if buildFlags.jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printSchedule(result)

		alerts := validator.Validate(result)
		if len(alerts) == 0 {
			fmt.Println("校验通过，无告警")
		} else {
			fmt.Printf("发现 %d 条告警:\n", len(alerts))
			for _, msg := range validator.Messages(alerts) {
				fmt.Println("  -", msg)
			}
		}
		return nil
	},
}

// printSchedule 打印排班网格与诊断摘要
func printSchedule(result *model.ScheduleResult) {
	diag := result.Diagnostics
	fmt.Printf("制度: 上%d休%d 带培%d天, 目标双班生产 %d 天\n",
		result.Params.W, result.Params.R, result.Params.I, result.Params.TotalCoverageDays)
	fmt.Printf("起始错位: %v, 总天数: %d\n", result.Starts, result.Days)
	fmt.Printf("诊断: 评分=%d 三班同岗=%d天 非双班=%d天 完美=%v\n\n",
		diag.Score, diag.ThreeProducingDays, diag.NotTwoAfterStartDays, diag.IsPerfect)

	for u := 0; u < model.UnitCount; u++ {
		var sb strings.Builder
		for _, s := range result.States[u] {
			if s == model.StateEmpty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(s))
			}
		}
		fmt.Printf("%s: %s\n", result.Names[u], sb.String())
	}

	var sb strings.Builder
	for _, c := range result.PCount {
		sb.WriteByte(byte('0' + c))
	}
	fmt.Printf("在岗: %s\n\n", sb.String())
}

func init() {
	buildCmd.Flags().IntVar(&buildFlags.w, "w", 14, "在岗块天数")
	buildCmd.Flags().IntVar(&buildFlags.r, "r", 7, "名义休息天数")
	buildCmd.Flags().IntVar(&buildFlags.i, "i", 5, "带培天数 (1-5)")
	buildCmd.Flags().IntVar(&buildFlags.coverage, "coverage", 90, "目标双班生产天数")
	buildCmd.Flags().BoolVar(&buildFlags.jsonOut, "json", false, "以JSON输出完整结果")
	rootCmd.AddCommand(buildCmd)
}
