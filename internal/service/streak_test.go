package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		d := today.AddDate(0, 0, -n)
		return &d
	}

	cases := []struct {
		name       string
		lastActive *time.Time
		current    int
		want       int
	}{
		{"never active", nil, 0, 1},
		{"same day keeps streak", daysAgo(0), 3, 3},
		{"consecutive day increments", daysAgo(1), 3, 4},
		{"consecutive day from one", daysAgo(1), 1, 2},
		{"two day gap resets", daysAgo(2), 7, 1},
		{"long gap resets", daysAgo(5), 7, 1},
		{"future last active resets", daysAgo(-1), 7, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextStreak(tc.lastActive, today, tc.current); got != tc.want {
				t.Fatalf("nextStreak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNextStreakIgnoresTimeOfDay(t *testing.T) {
	// 昨天 23:59 提交，今天 00:01 再提交，仍算连续
	last := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	if got := nextStreak(&last, today, 2); got != 3 {
		t.Fatalf("nextStreak = %d, want 3", got)
	}
}

func TestNextStreakAcrossDSTSpringForward(t *testing.T) {
	// 2026-03-08 美东夏令时开始，这一天只有 23 小时，
	// 相邻两天仍应算连续而不是同一天
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	last := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	today := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)

	if got := nextStreak(&last, today, 4); got != 5 {
		t.Fatalf("nextStreak = %d, want 5", got)
	}
}

func TestNextStreakHandlesMixedZones(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)

	// 驱动以 UTC 返回昨天的活跃时间，today 在本地时区
	last := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC) // UTC+8 的 6月15日 04:00
	today := time.Date(2025, 6, 16, 9, 0, 0, 0, loc)

	if got := nextStreak(&last, today, 2); got != 3 {
		t.Fatalf("nextStreak = %d, want 3", got)
	}
}
