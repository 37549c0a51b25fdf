package service

import "testing"

func TestClassifyDanger(t *testing.T) {
	tests := []struct {
		name        string
		triggered   bool
		condition   string
		explanation string
		want        string
	}{
		{
			name:        "not-triggered-is-safe",
			triggered:   false,
			condition:   "Is a child climbing?",
			explanation: "Child is climbing on a shelf",
			want:        "safe",
		},
		{
			name:        "keyword-case-insensitive",
			triggered:   true,
			condition:   "x",
			explanation: "Child is Climbing on a shelf",
			want:        "high",
		},
		{
			name:        "pool-keyword",
			triggered:   true,
			condition:   "Is a child near water?",
			explanation: "Child near pool edge",
			want:        "high",
		},
		{
			name:        "no-keyword-is-medium",
			triggered:   true,
			condition:   "x",
			explanation: "playing quietly",
			want:        "medium",
		},
		{
			name:        "empty-explanation-is-medium",
			triggered:   true,
			condition:   "Is there a knife?",
			explanation: "",
			want:        "medium",
		},
		{
			name:      "condition-is-ignored",
			triggered: true,
			// condition에 키워드가 있어도 explanation만 검사함
			condition:   "knife fire pool",
			explanation: "nothing unusual",
			want:        "medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDanger(tt.triggered, tt.condition, tt.explanation); got != tt.want {
				t.Fatalf("ClassifyDanger() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyDangerDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := ClassifyDanger(true, "x", "child near the window"); got != "high" {
			t.Fatalf("ClassifyDanger() = %q, want high", got)
		}
	}
}
