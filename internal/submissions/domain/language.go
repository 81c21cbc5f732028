package domain

// Language is a viewing language code offered on the booking forms.
type Language string

const (
	LangEnglish  Language = "en"
	LangRussian  Language = "ru"
	LangGeorgian Language = "ge"
	LangHebrew   Language = "he"
	LangArabic   Language = "ar"
)

var languageNames = map[Language]string{
	LangEnglish:  "English",
	LangRussian:  "Русский",
	LangGeorgian: "ქართული",
	LangHebrew:   "עברית",
	LangArabic:   "العربية",
}

// Name returns the display name for a language code. Unknown codes are
// rendered as-is so a message is still produced.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Valid reports whether the code is one of the offered languages.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}
