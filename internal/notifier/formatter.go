package notifier

import (
	"fmt"
	"strings"
	"time"

	"MetalSentinel/internal/model"
)

// FormatAnalysisReport formats one instrument's fused signal into a Telegram message.
func FormatAnalysisReport(name string, ind *model.IndicatorSet, trend *model.TrendShape, sig *model.FusedSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔍 <b>%s analysis</b> — 15m timeframe\n\n", strings.ToUpper(name)))
	b.WriteString(fmt.Sprintf("💰 Current price: $%.2f\n", ind.CurrentPriceValue()))
	b.WriteString(fmt.Sprintf("📊 Market direction: %s\n", sig.Direction))
	b.WriteString(fmt.Sprintf("🎯 Suggested action: %s\n", sig.Action))
	b.WriteString(fmt.Sprintf("🛡️ Confidence: %d%%\n\n", sig.Confidence))

	b.WriteString("📈 <b>Indicator breakdown:</b>\n")
	for _, v := range sig.Votes {
		b.WriteString(fmt.Sprintf("%s %s: %s\n", voteMarker(v.Vote, sig.Action), v.Name, v.Vote))
	}

	b.WriteString(fmt.Sprintf("\n📊 RSI: %.1f", ind.RSIValue()))
	b.WriteString(fmt.Sprintf("\n📊 Bollinger position: %.1f%%", ind.BBPositionValue()*100))
	b.WriteString(fmt.Sprintf("\n💪 Trend strength: %.1f%%", trend.StrengthValue()*100))

	b.WriteString(fmt.Sprintf("\n\n⏰ Analyzed at: %s", time.Now().Format("15:04")))
	b.WriteString("\n🔄 Next update in 4 hours")
	b.WriteString(fmt.Sprintf("\n#%s_analysis #signal", name))

	return b.String()
}

// voteMarker picks the breakdown marker: a check when the vote matches the
// chosen action, a dash for neutral, a cross for a dissenting vote.
func voteMarker(v model.Vote, action model.Action) string {
	switch {
	case string(v) == string(action):
		return "✅"
	case v == model.VoteNeutral:
		return "➖"
	default:
		return "❌"
	}
}

// FormatInsufficientData formats the abstain message for a degraded tick.
func FormatInsufficientData(name string) string {
	return fmt.Sprintf("⚠️ Not enough data to analyze %s this cycle", name)
}

// SummaryRow is one instrument's line in the daily summary.
type SummaryRow struct {
	Name          string
	CurrentPrice  float64
	ChangePercent float64
}

// FormatDailySummary formats the daily price summary across instruments.
func FormatDailySummary(rows []SummaryRow) string {
	var b strings.Builder

	b.WriteString("📊 <b>Daily metals report</b> 📊\n\n")
	b.WriteString(fmt.Sprintf("📅 Date: %s\n\n", time.Now().Format("2006-01-02 15:04")))

	for _, r := range rows {
		marker := "📈"
		if r.ChangePercent < 0 {
			marker = "📉"
		}
		b.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(r.Name)))
		b.WriteString(fmt.Sprintf("💰 Current price: $%.2f\n", r.CurrentPrice))
		b.WriteString(fmt.Sprintf("%s 30-day change: %+.2f%%\n\n", marker, r.ChangePercent))
	}

	b.WriteString("🔄 Next update in 4 hours\n")
	b.WriteString("#daily_report #metals")
	return b.String()
}
