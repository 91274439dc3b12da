package service

import (
	"time"
)

// truncateToDay 丢弃时分秒，只保留日历日期
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextStreak 根据最近活跃日期计算新的连续天数。
// 仅在本次 attempt 产生了新经验时才会被调用：
// 同一天重复得分不加天数，隔一天加一，断档或时间倒退重置为 1。
func nextStreak(lastActive *time.Time, today time.Time, current int) int {
	if lastActive == nil {
		return 1
	}

	// 统一换算到 today 的时区再取日历日，驱动返回的时区可能不同
	last := truncateToDay(lastActive.In(today.Location()))
	day := truncateToDay(today)

	// 按日历日比较而不是按 24 小时差：夏令时切换日不足 24 小时，
	// 用小时差除以 24 会把相邻两天算成同一天
	switch {
	case day.Equal(last):
		return current
	case day.Equal(last.AddDate(0, 0, 1)):
		return current + 1
	default:
		// 隔了不止一天视为中断；时钟回拨同样重置
		return 1
	}
}
