package voc

import (
	"strconv"
	"time"

	"rider_voc_sync/internal/normalize"
	"rider_voc_sync/internal/sheet"
)

// SuggestionColumns maps logical suggestion fields to the headers of the
// mirror worksheet layout.
var SuggestionColumns = sheet.ColumnMap{
	"id":                  "번호",
	"voc_category":        "VOC_구분",
	"rider_id":            "라이더_ID",
	"rider_type":          "라이더_유형",
	"title":               "제목",
	"description":         "상세_내용",
	"request_tasks":       "요청_업무",
	"improvement_plan":    "개선과제",
	"wiki_link":           "위키_링크",
	"status":              "상태",
	"feedback_status":     "피드백_상태",
	"team":                "담당팀",
	"owner":               "담당자",
	"due_date":            "완료_예정일",
	"completed_date":      "완료일",
	"progress_percentage": "진행률",
	"effect_description":  "효과_설명",
	"feedback_content":    "피드백_내용",
}

// Suggestion is one row of the mirror worksheet. ID carries the sheet's
// stable row number column (번호) and joins against the suggestions table;
// it is nil for rows the sheet has not numbered yet.
type Suggestion struct {
	RowNumber          int
	ID                 *int64
	VocCategory        string
	RiderID            string
	RiderType          string
	Title              string
	Description        string
	RequestTasks       string
	ImprovementPlan    string
	WikiLink           string
	Status             normalize.Status
	FeedbackStatus     string
	Team               string
	Owner              string
	DueDate            *string
	CompletedDate      *string
	ProgressPercentage int
	EffectDescription  string
	FeedbackContent    string
}

// SuggestionFromRow builds a Suggestion from a mapped worksheet row,
// normalizing status, dates, and the numeric columns.
func SuggestionFromRow(row sheet.Row) Suggestion {
	s := Suggestion{
		RowNumber:         row.Number,
		VocCategory:       row.Get("voc_category"),
		RiderID:           row.Get("rider_id"),
		RiderType:         row.Get("rider_type"),
		Title:             row.Get("title"),
		Description:       row.Get("description"),
		RequestTasks:      row.Get("request_tasks"),
		ImprovementPlan:   row.Get("improvement_plan"),
		WikiLink:          row.Get("wiki_link"),
		Status:            normalize.MapStatus(row.Get("status")),
		FeedbackStatus:    row.Get("feedback_status"),
		Team:              row.Get("team"),
		Owner:             row.Get("owner"),
		DueDate:           normalize.ParseDate(row.Get("due_date")),
		CompletedDate:     normalize.ParseDate(row.Get("completed_date")),
		EffectDescription: row.Get("effect_description"),
		FeedbackContent:   row.Get("feedback_content"),
	}

	if id, err := strconv.ParseInt(row.Get("id"), 10, 64); err == nil {
		s.ID = &id
	}
	if s.CompletedDate == nil {
		s.CompletedDate = s.DueDate
	}

	if pct, err := strconv.Atoi(row.Get("progress_percentage")); err == nil {
		s.ProgressPercentage = pct
	} else if s.Status == normalize.StatusInProgress {
		s.ProgressPercentage = 50
	}

	return s
}

// CollectSuggestions builds suggestions out of mapped rows, dropping
// blank rows (no title and no rider id).
func CollectSuggestions(rows []sheet.Row) []Suggestion {
	var suggestions []Suggestion
	for _, row := range rows {
		if row.Get("title") == "" && row.Get("rider_id") == "" {
			continue
		}
		suggestions = append(suggestions, SuggestionFromRow(row))
	}
	return suggestions
}

// SuggestionRecord is one persisted suggestion.
type SuggestionRecord struct {
	ID          int64
	Title       string
	Description string
	RiderID     string
	Status      normalize.Status
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
