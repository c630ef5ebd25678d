package address

import "strings"

// stateNameToCode maps full state names to their two-letter codes. Names are
// keyed lowercase; spellings without diacritics are included because
// spreadsheets frequently drop them.
var stateNameToCode = map[string]string{
	"acre":                "AC",
	"alagoas":             "AL",
	"amapá":               "AP",
	"amapa":               "AP",
	"amazonas":            "AM",
	"bahia":               "BA",
	"ceará":               "CE",
	"ceara":               "CE",
	"distrito federal":    "DF",
	"espírito santo":      "ES",
	"espirito santo":      "ES",
	"goiás":               "GO",
	"goias":               "GO",
	"maranhão":            "MA",
	"maranhao":            "MA",
	"mato grosso":         "MT",
	"mato grosso do sul":  "MS",
	"minas gerais":        "MG",
	"pará":                "PA",
	"para":                "PA",
	"paraíba":             "PB",
	"paraiba":             "PB",
	"paraná":              "PR",
	"parana":              "PR",
	"pernambuco":          "PE",
	"piauí":               "PI",
	"piaui":               "PI",
	"rio de janeiro":      "RJ",
	"rio grande do norte": "RN",
	"rio grande do sul":   "RS",
	"rondônia":            "RO",
	"rondonia":            "RO",
	"roraima":             "RR",
	"santa catarina":      "SC",
	"são paulo":           "SP",
	"sao paulo":           "SP",
	"sergipe":             "SE",
	"tocantins":           "TO",
}

var stateCodes = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// NormalizeStateCode accepts either a two-letter state code or a full state
// name and returns the canonical code. The second return is false when the
// input matches neither.
func NormalizeStateCode(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	upper := strings.ToUpper(trimmed)
	if len(upper) == 2 && stateCodes[upper] {
		return upper, true
	}

	if code, ok := stateNameToCode[strings.ToLower(trimmed)]; ok {
		return code, true
	}

	return "", false
}
