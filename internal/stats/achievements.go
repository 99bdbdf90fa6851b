package stats

import "github.com/hsinyuw/herbcal/internal/models"

// Achievement is a milestone defined as a pure predicate over the
// stats record. Unlocked status is recomputed on every read and never
// persisted, so an achievement only disappears if the underlying stat
// regresses (e.g. after a reset).
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Predicate   func(models.UserStats) bool
}

// AchievementStatus pairs a definition with its unlocked state for one
// stats snapshot.
type AchievementStatus struct {
	Achievement
	Unlocked bool
}

// Achievements returns the fixed, ordered achievement catalog.
func Achievements() []Achievement {
	return []Achievement{
		{
			ID: "first_meditation", Name: "初心", Icon: "🧘",
			Description: "完成第一次正念冥想",
			Predicate:   func(s models.UserStats) bool { return s.TotalMeditations >= 1 },
		},
		{
			ID: "meditations_10", Name: "勤習", Icon: "📿",
			Description: "累計完成 10 次冥想",
			Predicate:   func(s models.UserStats) bool { return s.TotalMeditations >= 10 },
		},
		{
			ID: "meditations_100", Name: "百日功", Icon: "🏮",
			Description: "累計完成 100 次冥想",
			Predicate:   func(s models.UserStats) bool { return s.TotalMeditations >= 100 },
		},
		{
			ID: "streak_7", Name: "七日連心", Icon: "🔥",
			Description: "連續 7 天練習",
			Predicate:   func(s models.UserStats) bool { return s.CurrentStreak >= 7 },
		},
		{
			ID: "streak_30", Name: "月滿", Icon: "🌕",
			Description: "連續 30 天練習",
			Predicate:   func(s models.UserStats) bool { return s.CurrentStreak >= 30 },
		},
		{
			ID: "longest_14", Name: "恆毅", Icon: "📅",
			Description: "最長連續紀錄達 14 天",
			Predicate:   func(s models.UserStats) bool { return s.LongestStreak >= 14 },
		},
		{
			ID: "herbs_10", Name: "採藥人", Icon: "🌿",
			Description: "收集 10 種藥材",
			Predicate:   func(s models.UserStats) bool { return len(s.CollectedHerbs) >= 10 },
		},
		{
			ID: "herbs_27", Name: "半部本草", Icon: "📖",
			Description: "收集 27 種藥材",
			Predicate:   func(s models.UserStats) bool { return len(s.CollectedHerbs) >= 27 },
		},
		{
			ID: "herbs_54", Name: "本草大全", Icon: "🏆",
			Description: "收集全部 54 種藥材",
			Predicate:   func(s models.UserStats) bool { return len(s.CollectedHerbs) >= 54 },
		},
		{
			ID: "minutes_500", Name: "靜水深流", Icon: "⏳",
			Description: "累計冥想 500 分鐘",
			Predicate:   func(s models.UserStats) bool { return s.TotalMinutes >= 500 },
		},
		{
			ID: "first_favorite", Name: "心有所屬", Icon: "❤️",
			Description: "收藏第一種藥材",
			Predicate:   func(s models.UserStats) bool { return len(s.FavoriteHerbs) >= 1 },
		},
	}
}

// EvaluateAchievements checks every definition against a snapshot, in
// catalog order.
func EvaluateAchievements(s models.UserStats) []AchievementStatus {
	defs := Achievements()
	statuses := make([]AchievementStatus, 0, len(defs))
	for _, def := range defs {
		statuses = append(statuses, AchievementStatus{
			Achievement: def,
			Unlocked:    def.Predicate(s),
		})
	}
	return statuses
}

// UnlockedCount returns how many achievements the snapshot satisfies.
func UnlockedCount(s models.UserStats) int {
	count := 0
	for _, def := range Achievements() {
		if def.Predicate(s) {
			count++
		}
	}
	return count
}
