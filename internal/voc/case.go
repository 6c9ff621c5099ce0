// Package voc holds the domain model for the rider counseling log: the
// case records read from the VOC worksheet, their store-side shape, and
// the suggestion records of the mirror flow.
package voc

import (
	"time"

	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/normalize"
	"rider_voc_sync/internal/sheet"
)

// CaseColumns maps logical case fields to the exact worksheet headers of
// the counseling log (17 columns, A through Q).
var CaseColumns = sheet.ColumnMap{
	"sheet_row_id":       "No",
	"cw_name":            "CW",
	"visit_date":         "방문일자",
	"visit_time":         "방문 시간대",
	"counselor":          "상담자",
	"rider_type":         "라이더 타입",
	"rider_id":           "아이디",
	"special_notes":      "특이사항",
	"visit_purpose":      "방문목적",
	"counseling_content": "상담내용",
	"main_content":       "주요 내용",
	"action_status":      "조치 상태",
	"action_content":     "조치 내용",
	"status_update_date": "상태 업데이트일",
	"assigned_staff":     "배정 담당자",
	"reference_link":     "연결 링크",
	"rider_feedback":     "라이더 피드백(공개용)",
}

// Case is one counseling case as read from the worksheet. The sheet is
// the master for every field it carries; empty strings stand for absent
// cells and become NULL at the store boundary.
type Case struct {
	SheetRowID        string
	CWName            string
	VisitDate         *string
	VisitTime         string
	Counselor         string
	RiderType         string
	RiderID           string
	SpecialNotes      string
	VisitPurpose      string
	CounselingContent string
	MainContent       string
	ActionStatus      string
	ActionContent     string
	StatusUpdateDate  *string
	AssignedStaff     string
	ReferenceLink     string
	RiderFeedback     string
}

// CaseFromRow builds a Case from a mapped worksheet row, normalizing the
// date fields.
func CaseFromRow(row sheet.Row) Case {
	return Case{
		SheetRowID:        row.Get("sheet_row_id"),
		CWName:            row.Get("cw_name"),
		VisitDate:         normalize.ParseDate(row.Get("visit_date")),
		VisitTime:         row.Get("visit_time"),
		Counselor:         row.Get("counselor"),
		RiderType:         row.Get("rider_type"),
		RiderID:           row.Get("rider_id"),
		SpecialNotes:      row.Get("special_notes"),
		VisitPurpose:      row.Get("visit_purpose"),
		CounselingContent: row.Get("counseling_content"),
		MainContent:       row.Get("main_content"),
		ActionStatus:      row.Get("action_status"),
		ActionContent:     row.Get("action_content"),
		StatusUpdateDate:  normalize.ParseDate(row.Get("status_update_date")),
		AssignedStaff:     row.Get("assigned_staff"),
		ReferenceLink:     row.Get("reference_link"),
		RiderFeedback:     row.Get("rider_feedback"),
	}
}

// CollectCases builds cases out of mapped rows, dropping rows that are
// not valid records: a row with neither a row id nor a rider id is
// treated as blank, and a row with neither a rider id nor counseling
// content is not a case at all.
func CollectCases(rows []sheet.Row) []Case {
	var cases []Case
	for _, row := range rows {
		if row.Get("sheet_row_id") == "" && row.Get("rider_id") == "" {
			log.Debug().Int("row", row.Number).Msg("Skipping row without row id and rider id")
			continue
		}

		c := CaseFromRow(row)
		if c.RiderID == "" && c.CounselingContent == "" {
			log.Debug().
				Int("row", row.Number).
				Str("sheet_row_id", c.SheetRowID).
				Msg("Skipping row without rider id and counseling content")
			continue
		}
		cases = append(cases, c)
	}
	return cases
}

// CaseRecord is one persisted counseling case. The embedded SheetRowID
// is empty for records created outside the sync flow.
type CaseRecord struct {
	ID int64
	Case
	CreatedAt time.Time
	UpdatedAt time.Time
}
