package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"MetalSentinel/internal/calculator"
	"MetalSentinel/internal/collector"
	"MetalSentinel/internal/config"
	"MetalSentinel/internal/markethours"
	"MetalSentinel/internal/notifier"
	"MetalSentinel/internal/recorder"
	"MetalSentinel/internal/strategy"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler manages the cron-driven analysis and summary jobs.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   *collector.Collector
	Notifier    *notifier.TelegramNotifier
	Recorder    recorder.Recorder
	Instruments []config.Instrument

	LookbackDays        int
	SummaryLookbackDays int
	MessageDelay        time.Duration

	Ctx context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:                cron.New(cron.WithSeconds()),
		Collector:           col,
		Notifier:            tn,
		Recorder:            rec,
		Instruments:         cfg.Analysis.Instruments,
		LookbackDays:        cfg.Analysis.LookbackDays,
		SummaryLookbackDays: cfg.Analysis.SummaryLookbackDays,
		MessageDelay:        time.Duration(cfg.Telegram.MessageDelaySeconds) * time.Second,
		Ctx:                 ctx,
	}
}

// RegisterAll registers the analysis and daily-summary tasks.
func (s *Scheduler) RegisterAll(analysisCron, dailyCron string) error {
	if _, err := s.Cron.AddFunc(analysisCron, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	if _, err := s.Cron.AddFunc(dailyCron, s.dailySummaryTask); err != nil {
		return fmt.Errorf("register daily summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// RunAnalysisNow executes the analysis task immediately, bypassing the
// market-hours gate (manual trigger / RUN_ON_START).
func (s *Scheduler) RunAnalysisNow() {
	s.runAnalysis()
}

func (s *Scheduler) analysisTask() {
	if !markethours.ShouldAnalyze(time.Now()) {
		log.Info("analysis skipped: market closed")
		return
	}
	s.runAnalysis()
}

func (s *Scheduler) runAnalysis() {
	log.Info("running analysis")
	for i, ins := range s.Instruments {
		if i > 0 {
			// Rate-limit outbound messages between instruments.
			select {
			case <-s.Ctx.Done():
				return
			case <-time.After(s.MessageDelay):
			}
		}
		report := s.analyzeInstrument(ins)
		s.trySend("analysis", report)
	}
}

// analyzeInstrument runs the full pipeline for one instrument and returns the
// rendered report. Every degrade path yields an abstain message rather than
// an error; outcomes are journaled for the operator.
func (s *Scheduler) analyzeInstrument(ins config.Instrument) string {
	series, err := s.Collector.Collect(ins.Symbol, s.LookbackDays)
	if err != nil {
		log.Errorf("collect %s: %v", ins.Name, err)
		s.recordRun(ins, recorder.OutcomeFetchFailed, 0, err.Error())
		return notifier.FormatInsufficientData(ins.Name)
	}

	if len(series.Bars) < calculator.MinIndicatorBars {
		log.Warnf("%s: only %d bars, need %d", ins.Name, len(series.Bars), calculator.MinIndicatorBars)
		s.recordRun(ins, recorder.OutcomeInsufficientData, len(series.Bars), "")
		return notifier.FormatInsufficientData(ins.Name)
	}

	ind := calculator.Calculate(series.Bars)
	if ind.Empty() {
		s.recordRun(ins, recorder.OutcomeInsufficientData, len(series.Bars), "indicator computation degraded")
		return notifier.FormatInsufficientData(ins.Name)
	}
	ind.SetCurrentPrice(series.CurrentPrice)

	trend := calculator.AnalyzeTrend(series.Bars)
	sig := strategy.Fuse(ind, trend)

	s.recordRun(ins, recorder.OutcomeOK, len(series.Bars), "")
	return notifier.FormatAnalysisReport(ins.Name, ind, trend, sig)
}

func (s *Scheduler) dailySummaryTask() {
	if !markethours.ShouldAnalyze(time.Now()) {
		log.Info("daily summary skipped: market closed")
		return
	}
	s.runDailySummary()
}

func (s *Scheduler) runDailySummary() {
	log.Info("running daily summary")
	rows := make([]notifier.SummaryRow, 0, len(s.Instruments))
	for _, ins := range s.Instruments {
		series, err := s.Collector.Collect(ins.Symbol, s.SummaryLookbackDays)
		if err != nil || len(series.Bars) == 0 {
			log.Warnf("daily summary: no data for %s: %v", ins.Name, err)
			continue
		}
		first := series.Bars[0].Close
		var change float64
		if first != 0 {
			change = (series.CurrentPrice - first) / first * 100
		}
		rows = append(rows, notifier.SummaryRow{
			Name:          ins.Name,
			CurrentPrice:  series.CurrentPrice,
			ChangePercent: change,
		})
	}
	if len(rows) == 0 {
		log.Error("daily summary: no instrument had data")
		return
	}
	s.trySend("daily_summary", notifier.FormatDailySummary(rows))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	cmd := strings.ToLower(strings.TrimPrefix(command, "/"))
	switch cmd {
	case "analyze":
		go s.RunAnalysisNow()
		return ""
	case "daily":
		go s.runDailySummary()
		return ""
	default:
		for _, ins := range s.Instruments {
			if cmd == ins.Name {
				return s.analyzeInstrument(ins)
			}
		}
	}

	var b strings.Builder
	b.WriteString("Available commands:\n• /analyze — run full analysis now\n• /daily — daily summary\n")
	for _, ins := range s.Instruments {
		fmt.Fprintf(&b, "• /%s — analyze %s only\n", ins.Name, ins.Name)
	}
	return b.String()
}

func (s *Scheduler) recordRun(ins config.Instrument, outcome string, bars int, note string) {
	if err := s.Recorder.RecordRun(&recorder.RunEvent{
		Instrument: ins.Name,
		Symbol:     ins.Symbol,
		Outcome:    outcome,
		Bars:       bars,
		Note:       note,
	}); err != nil {
		log.Errorf("record run: %v", err)
	}
}

func (s *Scheduler) trySend(kind, text string) {
	err := s.Notifier.SendWithRetry(s.Ctx, text, 3)
	if err != nil {
		log.Errorf("send %s: %v", kind, err)
	}
	evt := &recorder.DeliveryEvent{Kind: kind, OK: err == nil}
	if err != nil {
		evt.Error = err.Error()
	}
	if rerr := s.Recorder.RecordDelivery(evt); rerr != nil {
		log.Errorf("record delivery: %v", rerr)
	}
}
