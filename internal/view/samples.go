package view

func datep(s string) *string { return &s }

// Bundled fallback datasets, shown when the store is unreachable so the
// public pages never render empty-handed.
var sampleProblemCases = []CaseView{
	{
		RiderName:        "BC96**** 라이더님",
		RiderType:        "전업",
		VisitPurpose:     "문제해결",
		MainContent:      "배달 구역 설정 오류로 콜이 배정되지 않음",
		ActionStatus:     "해결",
		ActionContent:    "구역 설정을 재등록하고 정상 배정 확인",
		RiderFeedback:    "바로 해결해주셔서 감사합니다.",
		StatusUpdateDate: datep("2024-05-20"),
	},
	{
		RiderName:        "AB12**** 라이더님",
		RiderType:        "부업",
		VisitPurpose:     "문제해결",
		MainContent:      "정산 내역 불일치 문의",
		ActionStatus:     "해결",
		ActionContent:    "누락된 프로모션 금액 재정산",
		RiderFeedback:    "꼼꼼하게 확인해주셨어요.",
		StatusUpdateDate: datep("2024-05-12"),
	},
}

var sampleImprovements = []CaseView{
	{
		RiderName:        "CD34**** 라이더님",
		RiderType:        "전업",
		VisitPurpose:     "정책/서비스 개선",
		MainContent:      "라운지 내 정수기 추가 요청",
		ActionStatus:     "조치완료",
		ActionContent:    "냉온 정수기 1대 추가 설치",
		RiderFeedback:    "여름에 큰 도움이 됩니다.",
		StatusUpdateDate: datep("2024-04-30"),
	},
}
