// Package quotes serves context-aware motivational messages. The bank
// is static; recency state is passed in by the caller.
package quotes

import "slices"

var bank = map[string][]string{
	"early_morning": {
		"The world is still quiet. Use this golden hour wisely. 🌅",
		"Early risers don't just see the sunrise, they create their day. ☀️",
		"While others sleep, you're building your empire. 🏰",
		"5 AM thoughts become 5 PM results. Rise and conquer. 💪",
		"The dawn belongs to those with the courage to show up. 🌄",
	},
	"morning": {
		"Today is a blank canvas. Paint something extraordinary. 🎨",
		"Good morning, champion! Your best work awaits. 🏆",
		"Coffee's ready, goals are set. Let's make magic happen. ☕",
		"Every sunrise is an invitation to rewrite your story. 📖",
		"The morning breeze carries the energy of possibility. Let's go! 🌬️",
		"Your morning routine is your launchpad. 3, 2, 1... 🚀",
		"Start strong, finish stronger. That's the morning mindset. 💎",
		"The first step of a productive day? Opening this app. Done! ✅",
	},
	"midday": {
		"Noon check: Are you winning? (Yes, you are!) 🎯",
		"Halfway through the day, all the way committed. Keep going! ⚡",
		"Lunch break pro tip: Refuel your body, refocus your mind. 🍃",
		"The afternoon slump is a myth for focused achievers like you. 💪",
		"Midday momentum: You're closer to your goals than this morning! 📈",
		"The second half of the day is where legends are made. 🦸",
		"Sun's at its peak, and so is your potential. Shine on! ☀️",
	},
	"afternoon": {
		"Afternoon power hour: Make these next 60 minutes count. ⏰",
		"The 3 PM version of you is stronger than the 9 AM one. Prove it! 💪",
		"Energy dipping? One task completed and you'll feel recharged. ⚡",
		"You've come too far today to quit now. Push through! 🏃",
		"Afternoon thoughts: You're doing better than you think. 🌟",
		"Between lunch and dinner lies your window of greatness. 🪟",
		"The sun hasn't set on your potential yet. Keep building! 🌇",
	},
	"evening": {
		"Tonight's small wins are tomorrow's big momentum. 🌙",
		"End the day proud. Finish what you started. ✨",
		"The night shift of productivity begins. You've got this! 🦉",
		"One more task before rest. Your future self applauds you. 👏",
		"Evening reflection: Today you moved closer to your dreams. 💫",
		"Stars are coming out, and so is your inner champion. ⭐",
		"Close today's chapter strong. Tomorrow's is unwritten. 📚",
		"The quiet evening hours are when magic happens. 🔮",
	},
	"winning": {
		"You're absolutely crushing it! Keep that energy! 🔥",
		"Look at you go! This is your season of success! 🏆",
		"Unstoppable force meets achievable goals. You win! 💪",
		"This momentum? It's not luck, it's your hard work paying off. 💎",
		"You're in the zone! Don't stop, don't slow down! 🚀",
		"Peak performance unlocked. The world better watch out! 👑",
		"Excellence isn't an act, it's a habit. And you're proving it! ⭐",
		"Winners don't wait for motivation, they create it. Like you! 🎯",
		"You're not just meeting expectations, you're shattering them! 💥",
		"This is what success looks like. Soak it in, then keep going! 🌊",
	},
	"struggling": {
		"Tough day? Tomorrow you'll be stronger for it. 🌱",
		"Even the greatest climbers slip. What matters is you keep climbing. 🧗",
		"Progress isn't always visible. Trust the process. 🔄",
		"Your struggles today are training for tomorrow's triumphs. 💪",
		"One small step forward is still forward. Keep moving. 🐢",
		"Diamonds are made under pressure. You're becoming invaluable. 💎",
		"Bad days build character. Great days are coming. 🌈",
		"The only failure is giving up. You're still here, so you're winning. ✨",
		"Even slow progress beats standing still. You've got this! 🚶",
		"Your persistence will outlast any obstacle. Stay strong! 🛡️",
	},
	"recovering": {
		"Welcome back! Starting again takes real courage. 🦁",
		"Breaks happen. Comebacks are what define champions. 💪",
		"The best time to start was yesterday. The second best? Right now. ⏰",
		"Every master was once a beginner who refused to give up. 🌟",
		"Your restart button is pressed. Let's build new momentum! 🔄",
		"Yesterday's missed tasks? Forget them. Today is your day! 🌅",
		"Returning stronger is a superpower. Welcome to your new beginning. 🦸",
	},
	"streak_building": {
		"Day by day, you're building something incredible. Keep stacking! 🧱",
		"Streaks aren't about perfection, they're about showing up. You did! ✅",
		"Consistency is your superpower. Flex it daily! 💪",
		"Another day, another link in your chain of success. 🔗",
		"Your streak is proof that small actions create big results. 📈",
		"The compound effect of daily effort is unstoppable. Like you! 🚀",
	},
	"streak_long": {
		"Your dedication is legendary! This streak is inspiring! 🔥",
		"Day after day, you keep showing up. That's elite behavior! 👑",
		"This streak represents your discipline, focus, and grit. Respect! 💎",
		"Months of consistency have transformed you. Keep going! 🏆",
		"Your streak isn't just a number, it's a testament to who you've become. ⭐",
	},
	"monday": {
		"Monday: The day winners reset and reload. Let's go! 🚀",
		"New week, new opportunities. Monday is your launchpad! 🎯",
		"Monday motivation: Make this week your masterpiece. 🎨",
		"The start of something great. Monday was made for you! 💪",
		"While others dread Monday, you embrace it. That's the difference. 👑",
		"52 Mondays a year. 52 chances to change everything. This is one! 🔥",
	},
	"friday": {
		"Friday: Finish strong and enjoy a well-deserved weekend! 🎉",
		"End the week on a high note. You've earned it! 🏆",
		"Friday vibes: Crush these last tasks and celebrate! 🥳",
		"The weekend is calling, but first, let's close this week out right! 📞",
		"TGIF: Thank Goodness I Finished (everything on my list)! ✅",
	},
	"weekend": {
		"Weekend warrior mode: Activated! 💪",
		"Rest is productive too. But if you're here, you're a legend! 🦸",
		"Saturday productivity hits different. Make it count! ⚡",
		"Sunday prep: Today's effort is Monday's head start. 🏃",
		"Weekend tasks? That's dedication right there! 🌟",
		"Balance is key, but a little weekend progress never hurt! ⚖️",
	},
	"deep_focus": {
		"Deep work time: Where ordinary becomes extraordinary. 🧠",
		"Focus is a muscle. Every deep work session makes you stronger. 💪",
		"The quality of your focus determines the quality of your life. 🎯",
		"Distractions are optional. Excellence is your choice. ⭐",
		"One hour of focused work beats eight hours of scattered effort. ⏰",
		"Your brain in flow state is the most powerful tool in existence. 🔮",
		"Depth over breadth. Quality over quantity. Let's go deep! 🌊",
	},
	"milestone": {
		"Another milestone crushed! But you're just getting started. 🏆",
		"Achievement unlocked! Your dedication is paying off. 🎮",
		"Look at how far you've come! But the best is yet to come. 📈",
		"You didn't come this far to only come this far. Keep climbing! 🧗",
		"This milestone is proof of what's possible when you commit. 💎",
	},
	"inspirational": {
		"The only limit is the one you accept. Reject limits today. 🚀",
		"Success is rented, and rent is due every day. Pay up! 💰",
		"Your potential is infinite. Your day is finite. Make it count. ∞",
		"What you do today echoes in eternity. Make it meaningful. 🔔",
		"Be the person who decided to go for it. That's your story. 📖",
		"Action is the foundational key to all success. Take action now! 🔑",
		"Dreams don't work unless you do. Let's get to work! 🛠️",
		"The future belongs to those who believe in their to-do list. ✨",
		"Your only competition is who you were yesterday. Beat them! 🥊",
		"Discipline is choosing between what you want now and what you want most. 🎯",
	},
	"playful": {
		"Plot twist: You're about to have your most productive day ever. 📖",
		"Your to-do list fears you. As it should. 😤",
		"Today's forecast: 100% chance of productivity. ☁️",
		"Task management? More like task domination. 👊",
		"You + This App = Unstoppable Force of Nature. 🌪️",
		"Warning: High levels of productivity detected ahead. ⚠️",
		"Breaking news: Local hero crushes tasks, inspires millions. 📰",
		"Your keyboard is ready. Your coffee is ready. You were born ready! ☕",
	},
}

// CategoryQuotes returns one category's entries.
func CategoryQuotes(category string) []string {
	return slices.Clone(bank[category])
}

// Categories lists every category in the bank.
func Categories() []string {
	out := make([]string, 0, len(bank))
	for category := range bank {
		out = append(out, category)
	}
	return out
}

// Count is the total number of distinct quotes in the bank.
func Count() int {
	total := 0
	for _, quotes := range bank {
		total += len(quotes)
	}
	return total
}
