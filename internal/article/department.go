package article

import "strings"

type departmentCode struct {
	match string
	code  string
}

// departmentCodes maps well-known department names to short codes. Order
// matters: the first substring match wins.
var departmentCodes = []departmentCode{
	{"information technology", "IT"},
	{"human resources", "HR"},
	{"finance", "FIN"},
	{"marketing", "MKT"},
	{"sales", "SAL"},
	{"operations", "OPS"},
	{"legal", "LEG"},
	{"administration", "ADM"},
	{"research", "R&D"},
	{"development", "DEV"},
	{"support", "SUP"},
	{"security", "SEC"},
}

var departmentNamesEnglish = map[string]string{
	"IT":  "Information Technology",
	"HR":  "Human Resources",
	"FIN": "Finance",
	"MKT": "Marketing",
	"SAL": "Sales",
	"OPS": "Operations",
	"LEG": "Legal Affairs",
	"ADM": "Administration",
	"R&D": "Research & Development",
	"DEV": "Development",
	"SUP": "Customer Support",
	"SEC": "Security",
}

var departmentNamesArabic = map[string]string{
	"IT":  "تكنولوجيا المعلومات",
	"HR":  "الموارد البشرية",
	"FIN": "المالية",
	"MKT": "التسويق",
	"SAL": "المبيعات",
	"OPS": "العمليات",
	"LEG": "الشؤون القانونية",
	"ADM": "الإدارة",
	"R&D": "البحث والتطوير",
	"DEV": "التطوير",
	"SUP": "دعم العملاء",
	"SEC": "الأمن",
}

// DepartmentCode derives a short uppercase code from a department name or
// returns the input unchanged when it already looks like a code.
func DepartmentCode(department string) string {
	trimmed := strings.TrimSpace(department)
	if trimmed == "" {
		return "DEP"
	}

	lowered := strings.ToLower(trimmed)
	for _, entry := range departmentCodes {
		if strings.Contains(lowered, entry.match) {
			return entry.code
		}
	}

	// Short all-caps inputs are treated as codes already.
	if len(trimmed) <= 4 && trimmed == strings.ToUpper(trimmed) {
		return trimmed
	}

	words := strings.Fields(trimmed)
	if len(words) > 1 {
		var initials strings.Builder
		for i, word := range words {
			if i == 3 {
				break
			}
			initials.WriteString(strings.ToUpper(string([]rune(word)[0])))
		}
		return initials.String()
	}

	runes := []rune(strings.ToUpper(trimmed))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// DepartmentName resolves the display name for a department code in the
// requested language, falling back to a title-cased form of the input.
func DepartmentName(department, code, language string) string {
	names := departmentNamesEnglish
	if language == LanguageArabic {
		names = departmentNamesArabic
	}

	if name, ok := names[code]; ok {
		return name
	}

	trimmed := strings.TrimSpace(department)
	if trimmed == "" {
		if language == LanguageArabic {
			return "قسم عام"
		}
		return "General Department"
	}

	if language == LanguageArabic {
		return trimmed
	}

	return titleCase(trimmed)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
