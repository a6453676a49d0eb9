package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

type summaryService struct {
	summarizer Summarizer
}

func NewSummaryService(summarizer Summarizer) *summaryService {
	return &summaryService{
		summarizer: summarizer,
	}
}

// SummarizeSchedule renders the schedule as text and summarizes it.
// A schedule with nothing to say is summarized as "" without a remote call.
func (s *summaryService) SummarizeSchedule(ctx context.Context, items []domain.ScheduleItem) (string, error) {
	document := ScheduleDocument(items)
	if document == "" {
		slog.InfoContext(ctx, "Empty schedule, nothing to summarize", "items", len(items))
		return "", nil
	}

	slog.InfoContext(ctx, "Summarizing schedule", "items", len(items), "length", len([]rune(document)))

	summary, err := s.summarizer.Summarize(ctx, document)
	if err != nil {
		return "", fmt.Errorf("summarizing schedule: %w", err)
	}
	return summary, nil
}

// ScheduleDocument renders one line per schedule item, skipping absent fields.
func ScheduleDocument(items []domain.ScheduleItem) string {
	lines := lo.Map(items, func(item domain.ScheduleItem, _ int) string {
		return scheduleLine(item)
	})
	return strings.Join(lo.Compact(lines), "\n")
}

func scheduleLine(item domain.ScheduleItem) string {
	var label string
	if l := item.Label(); l != "" {
		label = "[" + l + "]"
	}

	parts := []string{
		label,
		item.Title,
		datePart(item.Start),
		timeRange(timePart(item.Start), timePart(item.End)),
		prefixed("장소:", item.Seat),
		prefixed("운동:", item.Exercise),
		prefixed("내용:", item.Content),
		prefixed("출발:", item.Area),
		prefixed("도착:", item.Dest),
		prefixed("함께:", item.Mate),
	}
	return strings.Join(lo.Compact(parts), " ")
}

func datePart(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	return ts[:10]
}

// timePart takes HH:MM out of an ISO timestamp such as 2024-01-01T09:00:00.
func timePart(ts string) string {
	if len(ts) <= 16 {
		return ""
	}
	return ts[11:16]
}

func timeRange(from, to string) string {
	switch {
	case from != "" && to != "":
		return from + "~" + to
	case to != "":
		return "~" + to
	default:
		return from
	}
}

func prefixed(prefix, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return prefix + value
}
