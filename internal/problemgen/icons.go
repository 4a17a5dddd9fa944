package problemgen

// visualIcons are the glyphs drawn in visual questions.
var visualIcons = []string{
	"🍎", "🍌", "🍇", "🍊", "🍓", "🍍", "🥥", "🍉",
	"🐶", "🐱", "🐭", "🐰", "🦊", "🐻", "🐼", "🦁",
	"🚗", "🚕", "🚙", "🚌", "🚓", "🚑", "🚒", "🚐",
	"⚽", "🏀", "🏈", "⚾", "🥎", "🎾", "🏐", "🏉",
	"🌟", "🎈", "🎁", "🎀", "🧸", "🎵", "🍄", "🌸",
}

// maxVisualCount caps icon groups regardless of the level range.
const maxVisualCount = 10
