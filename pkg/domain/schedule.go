package domain

type ScheduleItem struct {
	Title    string `json:"stitle"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Cal      *int   `json:"cal"`
	Seat     string `json:"seat"`
	Exercise string `json:"sexer"`
	Content  string `json:"scontent"`
	Area     string `json:"sarea"`
	Dest     string `json:"sdest"`
	Mate     string `json:"smate"`
}

type SummaryRequest struct {
	Content *[]ScheduleItem `json:"content"`
}

type SummaryReply struct {
	Summary string `json:"summary"`
}

var calendarLabels = map[int]string{
	1: "일정",
	2: "아침",
	3: "점심",
	4: "저녁",
	5: "운동",
	6: "경로",
}

// CalendarLabel names a calendar category. Unknown categories have no label.
func CalendarLabel(cal int) string {
	return calendarLabels[cal]
}

// Label is CalendarLabel for an item whose category may be absent.
func (s ScheduleItem) Label() string {
	if s.Cal == nil {
		return ""
	}
	return CalendarLabel(*s.Cal)
}
