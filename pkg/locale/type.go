package locale

// Locale is a context key type for storing locale information.
type Locale struct{}

// LangList contains all supported language codes.
var LangList = []string{EN, ES, ZH}
