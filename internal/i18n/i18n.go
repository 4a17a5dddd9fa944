// Package i18n holds the display strings for the two supported languages.
// Language never affects arithmetic; it only selects text.
package i18n

// Lang is a display language tag.
type Lang string

const (
	ID Lang = "id"
	EN Lang = "en"
)

// Parse maps a tag to a supported language. Anything other than "en"
// resolves to Indonesian, the default language.
func Parse(tag string) Lang {
	if tag == string(EN) {
		return EN
	}
	return ID
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == EN {
		return ID
	}
	return EN
}

// Strings is the full set of UI text for one language.
type Strings struct {
	AppTitle string
	SubTitle string

	NamePrompt      string
	NamePlaceholder string
	ChooseAvatar    string
	AbilityLabel    string
	Start           string

	AgeTitle    string
	AgeSubtitle string
	Years       string

	MenuAge    string
	Locked     string
	Shop       string
	Stats      string
	Ranks      string
	Language   string
	ChangeAge  string

	Score           string
	Loading         string
	Correct         string
	PointsSuffix    string
	SpeedBonus      string
	Oops            string
	CorrectAnswerIs string
	Progress        string

	Amazing       string
	Good          string
	ResultOops    string
	LevelComplete string
	TryAgain      string
	EarnedCoins   string
	TotalCoins    string
	Target        string
	Next          string
	Retry         string
	Menu          string
	NewLevel      string

	ShopTitle string
	Coins     string
	Buy       string
	Select    string
	Selected  string
	Price     string
	NotEnough string
	Success   string

	StatsTitle       string
	Accuracy         string
	WinRate          string
	LeaderboardTitle string
	EmptyLeaderboard string
	RankBeginner     string
	RankAdventurer   string
	RankExpert       string
	RankMaster       string

	Play        string
	Exit        string
	GetReady    string
	Streak      string
	LevelLabel  string
	GamesPlayed string
	GamesWon    string
	TotalScore  string
	QuitConfirm string
	Owned       string
	History     string

	About         string
	AboutTitle    string
	AboutGame     string
	AboutText     string
	AboutDev      string
	AboutCredits  string
	AboutMadeWith string
	Version       string

	// Abilities is keyed by avatar identity.
	Abilities map[string]string
}

var indonesian = &Strings{
	AppTitle: "KUIS MATEMATIKA",
	SubTitle: "Petualangan Angka!",

	NamePrompt:      "Siapa Namamu?",
	NamePlaceholder: "Ketik nama...",
	ChooseAvatar:    "Pilih Jagoanmu",
	AbilityLabel:    "Kekuatan:",
	Start:           "MULAI",

	AgeTitle:    "Halo Teman!",
	AgeSubtitle: "Usiamu?",
	Years:       "Th",

	MenuAge:   "Usia",
	Locked:    "Terkunci",
	Shop:      "TOKO",
	Stats:     "STATS",
	Ranks:     "PERINGKAT",
	Language:  "BAHASA",
	ChangeAge: "GANTI USIA",

	Score:           "SKOR",
	Loading:         "Memuat...",
	Correct:         "BENAR!",
	PointsSuffix:    "poin",
	SpeedBonus:      "Kilat",
	Oops:            "UPS!",
	CorrectAnswerIs: "JAWABANNYA:",
	Progress:        "Soal",

	Amazing:       "Luar Biasa!",
	Good:          "Bagus!",
	ResultOops:    "Ups!",
	LevelComplete: "Selesai!",
	TryAgain:      "Coba Lagi!",
	EarnedCoins:   "Dapat Koin",
	TotalCoins:    "Total Koin",
	Target:        "Target",
	Next:          "Lanjut",
	Retry:         "Ulang",
	Menu:          "Menu",
	NewLevel:      "Level baru terbuka!",

	ShopTitle: "Pilih Karakter",
	Coins:     "Koin:",
	Buy:       "BELI",
	Select:    "PAKAI",
	Selected:  "DIPAKAI",
	Price:     "Harga:",
	NotEnough: "Koin Kurang!",
	Success:   "Berhasil!",

	StatsTitle:       "Prestasi",
	Accuracy:         "Akurasi",
	WinRate:          "Menang",
	LeaderboardTitle: "PERINGKAT",
	EmptyLeaderboard: "Belum ada juara.",
	RankBeginner:     "Pemula",
	RankAdventurer:   "Petualang",
	RankExpert:       "Ahli",
	RankMaster:       "Master",

	Play:        "MAIN",
	Exit:        "KELUAR",
	GetReady:    "Siap-siap...",
	Streak:      "Kombo",
	LevelLabel:  "Level",
	GamesPlayed: "Dimainkan",
	GamesWon:    "Menang",
	TotalScore:  "Total Skor",
	QuitConfirm: "Keluar dari level? Skor tidak disimpan. (y/n)",
	Owned:       "DIMILIKI",
	History:     "RIWAYAT",

	About:         "INFO",
	AboutTitle:    "Info Game",
	AboutGame:     "Tentang",
	AboutText:     "MathQuest adalah game edukasi interaktif untuk anak usia 6-12 tahun. Melatih berhitung (tambah, kurang, kali, bagi) dengan cara seru.",
	AboutDev:      "Pengembang",
	AboutCredits:  "Kredit",
	AboutMadeWith: "Dibuat dengan cinta dari Serang Banten",
	Version:       "Versi",

	Abilities: map[string]string{
		"robot":  "Skor +5% (Cerdas)",
		"angel":  "Waktu +5s (Pelindung)",
		"fairy":  "Bonus Streak (Ajaib)",
		"wizard": "Waktu +2s (Penyihir)",
		"royal":  "Skor +25% (Raja)",
		"hero":   "Skor +15% (Pemberani)",
		"cat":    "Combo Awal x1 (Lincah)",
		"bunny":  "Waktu +5s (Cepat)",
		"bear":   "Waktu +3s (Kuat)",
		"dino":   "Bonus Streak (Ganas)",
		"ninja":  "Combo Awal x2 (Senyap)",
		"alien":  "Waktu +4s (Antariksa)",
	},
}

var english = &Strings{
	AppTitle: "MATH QUEST",
	SubTitle: "Number Adventure!",

	NamePrompt:      "Your Name?",
	NamePlaceholder: "Type name...",
	ChooseAvatar:    "Pick Hero",
	AbilityLabel:    "Power:",
	Start:           "START",

	AgeTitle:    "Hi Friend!",
	AgeSubtitle: "Age?",
	Years:       "Yo",

	MenuAge:   "Age",
	Locked:    "Locked",
	Shop:      "SHOP",
	Stats:     "STATS",
	Ranks:     "RANKS",
	Language:  "LANG",
	ChangeAge: "CHANGE AGE",

	Score:           "SCORE",
	Loading:         "Loading...",
	Correct:         "CORRECT!",
	PointsSuffix:    "pts",
	SpeedBonus:      "Speed",
	Oops:            "OOPS!",
	CorrectAnswerIs: "ANSWER:",
	Progress:        "Quest",

	Amazing:       "Amazing!",
	Good:          "Great!",
	ResultOops:    "Oops!",
	LevelComplete: "Done!",
	TryAgain:      "Retry!",
	EarnedCoins:   "Coins",
	TotalCoins:    "Total",
	Target:        "Target",
	Next:          "Next",
	Retry:         "Retry",
	Menu:          "Menu",
	NewLevel:      "New level unlocked!",

	ShopTitle: "Choose Hero",
	Coins:     "Coins:",
	Buy:       "BUY",
	Select:    "SELECT",
	Selected:  "CHOSEN",
	Price:     "Price:",
	NotEnough: "Need Coins!",
	Success:   "Got it!",

	StatsTitle:       "Stats",
	Accuracy:         "Accuracy",
	WinRate:          "Win Rate",
	LeaderboardTitle: "RANKS",
	EmptyLeaderboard: "No champions yet.",
	RankBeginner:     "Beginner",
	RankAdventurer:   "Adventurer",
	RankExpert:       "Expert",
	RankMaster:       "Master",

	Play:        "PLAY",
	Exit:        "EXIT",
	GetReady:    "Get ready...",
	Streak:      "Combo",
	LevelLabel:  "Level",
	GamesPlayed: "Played",
	GamesWon:    "Won",
	TotalScore:  "Total Score",
	QuitConfirm: "Leave this level? The score is not kept. (y/n)",
	Owned:       "OWNED",
	History:     "HISTORY",

	About:         "ABOUT",
	AboutTitle:    "Game Info",
	AboutGame:     "About",
	AboutText:     "MathQuest is a fun educational game for kids 6-12. Practice math skills with avatars and levels.",
	AboutDev:      "Dev",
	AboutCredits:  "Credits",
	AboutMadeWith: "Built with love from Serang Banten",
	Version:       "Version",

	Abilities: map[string]string{
		"robot":  "Score +5% (Smart)",
		"angel":  "Time +5s (Guardian)",
		"fairy":  "Big Streak (Magic)",
		"wizard": "Time +2s (Wizardry)",
		"royal":  "Score +25% (King)",
		"hero":   "Score +15% (Brave)",
		"cat":    "Combo Start x1 (Agile)",
		"bunny":  "Time +5s (Fast)",
		"bear":   "Time +3s (Strong)",
		"dino":   "Giant Streak (Fierce)",
		"ninja":  "Combo Start x2 (Stealth)",
		"alien":  "Time +4s (Space)",
	},
}

// For returns the strings for lang.
func For(lang Lang) *Strings {
	if lang == EN {
		return english
	}
	return indonesian
}
