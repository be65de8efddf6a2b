package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schedule.json>",
	Short: "校验JSON格式的排班结果",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("读取排班文件失败: %w", err)
		}

		var result model.ScheduleResult
		if err := json.Unmarshal(data, &result); err != nil {
			return fmt.Errorf("解析排班文件失败: %w", err)
		}

		alerts := validator.Validate(&result)
		if len(alerts) == 0 {
			fmt.Println("校验通过，无告警")
			return nil
		}

		fmt.Printf("发现 %d 条告警:\n", len(alerts))
		for _, msg := range validator.Messages(alerts) {
			fmt.Println("  -", msg)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
