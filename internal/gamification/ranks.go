package gamification

type Rank struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Tier  string `json:"tier"`
}

const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
	TierElite        = "elite"
	TierLegendary    = "legendary"
)

// ranks is indexed by level-1; one cosmetic entry per level up to 50.
var ranks = [MaxLevel]Rank{
	{"Novice", "🌱", "#9ca3af", TierBeginner},
	{"Apprentice", "📚", "#9ca3af", TierBeginner},
	{"Student", "✏️", "#9ca3af", TierBeginner},
	{"Learner", "🎓", "#9ca3af", TierBeginner},
	{"Initiate", "🔰", "#22c55e", TierBeginner},
	{"Trainee", "💪", "#22c55e", TierBeginner},
	{"Rookie", "⭐", "#22c55e", TierBeginner},
	{"Junior", "🌟", "#22c55e", TierBeginner},
	{"Adept", "✨", "#22c55e", TierBeginner},
	{"Skilled", "🎯", "#3b82f6", TierBeginner},
	{"Practitioner", "🔧", "#3b82f6", TierIntermediate},
	{"Journeyman", "🛤️", "#3b82f6", TierIntermediate},
	{"Craftsman", "⚒️", "#3b82f6", TierIntermediate},
	{"Artisan", "🎨", "#3b82f6", TierIntermediate},
	{"Specialist", "🎖️", "#8b5cf6", TierIntermediate},
	{"Professional", "💼", "#8b5cf6", TierIntermediate},
	{"Veteran", "🏅", "#8b5cf6", TierIntermediate},
	{"Expert", "🧠", "#8b5cf6", TierIntermediate},
	{"Mentor", "📖", "#8b5cf6", TierIntermediate},
	{"Master", "🏆", "#f59e0b", TierIntermediate},
	{"Elite", "💎", "#f59e0b", TierAdvanced},
	{"Champion", "🥇", "#f59e0b", TierAdvanced},
	{"Conqueror", "⚔️", "#f59e0b", TierAdvanced},
	{"Virtuoso", "🎭", "#f59e0b", TierAdvanced},
	{"Grandmaster", "👑", "#ef4444", TierAdvanced},
	{"Legendary", "🌠", "#ef4444", TierAdvanced},
	{"Mythic", "🔮", "#ef4444", TierAdvanced},
	{"Immortal", "♾️", "#ef4444", TierAdvanced},
	{"Transcendent", "🌌", "#ef4444", TierAdvanced},
	{"Ascended", "👁️", "#ef4444", TierAdvanced},
	{"Overlord", "🦅", "#ec4899", TierElite},
	{"Sovereign", "🏛️", "#ec4899", TierElite},
	{"Emperor", "🦁", "#ec4899", TierElite},
	{"Titan", "🗿", "#ec4899", TierElite},
	{"Demigod", "⚡", "#ec4899", TierElite},
	{"Divine", "☀️", "#fbbf24", TierElite},
	{"Celestial", "🌙", "#fbbf24", TierElite},
	{"Eternal", "💫", "#fbbf24", TierElite},
	{"Infinity", "🌀", "#fbbf24", TierElite},
	{"Omega", "Ω", "#fbbf24", TierElite},
	{"Apex Predator", "🐺", "#14b8a6", TierLegendary},
	{"World Shaper", "🌍", "#14b8a6", TierLegendary},
	{"Time Master", "⏳", "#14b8a6", TierLegendary},
	{"Reality Bender", "🎲", "#14b8a6", TierLegendary},
	{"Cosmos Walker", "🚀", "#14b8a6", TierLegendary},
	{"Universe Architect", "🏗️", "#f97316", TierLegendary},
	{"Dimension Ruler", "🌐", "#f97316", TierLegendary},
	{"Existence Keeper", "🔑", "#f97316", TierLegendary},
	{"Productivity God", "⚜️", "#f97316", TierLegendary},
	{"The One", "👁️‍🗨️", "#f97316", TierLegendary},
}

// RankForLevel returns the cosmetic rank for a level. Levels out of
// range clamp to the table boundaries.
func RankForLevel(level int) Rank {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return ranks[level-1]
}
