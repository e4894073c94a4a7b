package locale

// Supported languages
const (
	EN = "en" // English
	ES = "es" // Spanish
	ZH = "zh" // Chinese
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN
