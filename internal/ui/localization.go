package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAddTracker      = "add_tracker"
	KeyEnterGoal       = "enter_goal"
	KeyEnterDeadline   = "enter_deadline"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyView            = "view"
	KeyLanguage        = "language"
	KeyResetAll        = "reset_all"
	KeyResetConfirm    = "reset_confirm"
	KeyRemoveTracker   = "remove_tracker"
	KeyRemoveConfirm   = "remove_confirm"
	KeyTimeUp          = "time_up"
	KeyEmptyGoal       = "empty_goal"
	KeyInvalidDeadline = "invalid_deadline"
	KeyPastDeadline    = "past_deadline"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAddTracker:      "Add tracker",
		KeyEnterGoal:       "What are you working toward?",
		KeyEnterDeadline:   "YYYY-MM-DDTHH:MM",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyView:            "View",
		KeyLanguage:        "Language",
		KeyResetAll:        "Reset all",
		KeyResetConfirm:    "Remove all %d tracker(s)? This cannot be undone.",
		KeyRemoveTracker:   "Remove tracker",
		KeyRemoveConfirm:   "Remove this goal tracker?",
		KeyTimeUp:          "Time's up!",
		KeyEmptyGoal:       "Please enter a goal",
		KeyInvalidDeadline: "Deadline is not a valid date and time",
		KeyPastDeadline:    "Deadline must be in the future",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAddTracker:      "Добавить цель",
		KeyEnterGoal:       "Над чем вы работаете?",
		KeyEnterDeadline:   "ГГГГ-ММ-ДДTЧЧ:ММ",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyView:            "Вид",
		KeyLanguage:        "Язык",
		KeyResetAll:        "Сбросить все",
		KeyResetConfirm:    "Удалить все трекеры (%d)? Это действие необратимо.",
		KeyRemoveTracker:   "Удалить трекер",
		KeyRemoveConfirm:   "Удалить этот трекер цели?",
		KeyTimeUp:          "Время вышло!",
		KeyEmptyGoal:       "Пожалуйста, введите цель",
		KeyInvalidDeadline: "Дедлайн не является корректной датой и временем",
		KeyPastDeadline:    "Дедлайн должен быть в будущем",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAddTracker:      "Adicionar meta",
		KeyEnterGoal:       "No que você está trabalhando?",
		KeyEnterDeadline:   "AAAA-MM-DDTHH:MM",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyView:            "Exibir",
		KeyLanguage:        "Idioma",
		KeyResetAll:        "Redefinir tudo",
		KeyResetConfirm:    "Remover todos os %d rastreadores? Isso não pode ser desfeito.",
		KeyRemoveTracker:   "Remover rastreador",
		KeyRemoveConfirm:   "Remover este rastreador de meta?",
		KeyTimeUp:          "O tempo acabou!",
		KeyEmptyGoal:       "Por favor, digite uma meta",
		KeyInvalidDeadline: "O prazo não é uma data e hora válida",
		KeyPastDeadline:    "O prazo deve estar no futuro",
	}
}
