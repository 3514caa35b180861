package article

import "testing"

func TestDepartmentCode(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Information Technology": "IT",
		"human resources":        "HR",
		"Finance":                "FIN",
		"marketing department":   "MKT",
		"Research":               "R&D",
		"IT":                     "IT",
		"OPS":                    "OPS",
		"Quality Assurance Team": "QAT",
		"Logistics":              "LOG",
		"":                       "DEP",
	}

	for input, want := range cases {
		if got := DepartmentCode(input); got != want {
			t.Errorf("DepartmentCode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDepartmentName(t *testing.T) {
	t.Parallel()

	if got := DepartmentName("it dept", "IT", LanguageEnglish); got != "Information Technology" {
		t.Errorf("expected mapped English name, got %q", got)
	}

	if got := DepartmentName("it dept", "IT", LanguageArabic); got != "تكنولوجيا المعلومات" {
		t.Errorf("expected mapped Arabic name, got %q", got)
	}

	if got := DepartmentName("quality assurance", "QA", LanguageEnglish); got != "Quality Assurance" {
		t.Errorf("expected title-cased name, got %q", got)
	}

	if got := DepartmentName("", "XYZ", LanguageEnglish); got != "General Department" {
		t.Errorf("expected default name, got %q", got)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	if got := NormalizeLanguage("ar"); got != LanguageArabic {
		t.Errorf("expected ar, got %q", got)
	}
	if got := NormalizeLanguage("fr"); got != LanguageEnglish {
		t.Errorf("expected en for unknown codes, got %q", got)
	}
	if got := NormalizeLanguage(""); got != LanguageEnglish {
		t.Errorf("expected en for blank input, got %q", got)
	}
}
