// AI 응답의 위험도 분류 로직 정의
//
// 분류 규칙:
//  1. triggered가 false면 무조건 "safe" (condition 텍스트는 무시)
//  2. explanation을 소문자로 변환 후 고위험 키워드 포함 여부 검사 → 포함 시 "high"
//  3. 키워드가 없으면 "medium"
//
// condition은 분류에 사용되지 않음 (호출부 서명 일관성을 위해 파라미터만 유지)

package service

import "strings"

const (
	DangerSafe   = "safe"
	DangerMedium = "medium"
	DangerHigh   = "high"
)

// 고위험 판정 키워드 (explanation 소문자 기준 부분 일치)
var highKeywords = []string{
	"climbing", "window", "balcony", "knife", "medicine",
	"stranger", "falling", "sharp", "fire", "drown",
	"pool", "choking", "electric",
}

// ClassifyDanger - trigger 플래그와 설명 텍스트로 위험 단계를 결정
// 순수 함수: 같은 입력은 항상 같은 결과를 반환
func ClassifyDanger(triggered bool, condition, explanation string) string {
	if !triggered {
		return DangerSafe
	}
	lower := strings.ToLower(explanation)
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			return DangerHigh
		}
	}
	return DangerMedium
}
