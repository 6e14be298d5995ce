package notifier

import (
	"fmt"
	"strings"
	"time"

	"stocksentry/internal/model"
)

// FormatAlert formats a threshold-crossing alert message.
func FormatAlert(inst model.Instrument, q model.Quote, mv model.Movement) string {
	direction := "📈 上涨"
	if !mv.Up() {
		direction = "📉 下跌"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 股价异动 | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("%s (%s) %s %+.2f%%\n", inst.Name, inst.Symbol, direction, mv.Percent))
	b.WriteString(fmt.Sprintf("现价: %.2f (今开 %.2f)\n", q.Current, q.Open))
	b.WriteString(fmt.Sprintf("阈值: %.1f%%", inst.Threshold))
	return b.String()
}

// FormatStartup formats the boot banner sent once at process start.
func FormatStartup(watchlist []model.Instrument, interval time.Duration) string {
	var b strings.Builder
	b.WriteString("📊 投资监控启动\n")
	b.WriteString(fmt.Sprintf("轮询间隔: %s\n", interval))
	b.WriteString("监控列表:\n")
	for _, inst := range watchlist {
		b.WriteString(fmt.Sprintf("  • %s (%s) 阈值 %.1f%%\n", inst.Name, inst.Symbol, inst.Threshold))
	}
	return strings.TrimRight(b.String(), "\n")
}
