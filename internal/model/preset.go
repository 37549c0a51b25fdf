package model

// SafetyPreset - 대시보드에서 선택 가능한 사전 정의 감시 조건
type SafetyPreset struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Condition   string `json:"condition"`
	DangerLevel string `json:"danger_level"`
	Color       string `json:"color"`
}

// SafetyPresets - 기본 제공 프리셋 목록
var SafetyPresets = []SafetyPreset{
	{
		ID:          "general_safety",
		Label:       "Is Child Safe?",
		Icon:        "🛡️",
		Condition:   "Is the child in a safe situation? Look for any dangers like climbing, sharp objects, water hazards, or being near windows/balconies.",
		DangerLevel: "check",
		Color:       "#3b82f6",
	},
	{
		ID:          "climbing",
		Label:       "Climbing Danger",
		Icon:        "🧗",
		Condition:   "Is a child climbing on furniture, windows, balconies, shelves, or any elevated surface that could cause a fall?",
		DangerLevel: "high",
		Color:       "#ef4444",
	},
	{
		ID:          "dangerous_objects",
		Label:       "Dangerous Objects",
		Icon:        "🔪",
		Condition:   "Are there dangerous objects accessible to a child, such as knives, scissors, medicine bottles, cleaning products, or small choking hazards?",
		DangerLevel: "high",
		Color:       "#f97316",
	},
	{
		ID:          "stranger",
		Label:       "Stranger Alert",
		Icon:        "👤",
		Condition:   "Is there an unfamiliar adult or stranger present in the room with the child?",
		DangerLevel: "high",
		Color:       "#dc2626",
	},
	{
		ID:          "alone_dangerous",
		Label:       "Alone in Danger Zone",
		Icon:        "🚪",
		Condition:   "Is a child alone in a potentially dangerous area such as a kitchen, bathroom, garage, or near a swimming pool?",
		DangerLevel: "medium",
		Color:       "#eab308",
	},
	{
		ID:          "water_hazard",
		Label:       "Water Hazard",
		Icon:        "🌊",
		Condition:   "Is a child near water such as a bathtub, pool, bucket, or any body of water without adult supervision?",
		DangerLevel: "high",
		Color:       "#06b6d4",
	},
}
