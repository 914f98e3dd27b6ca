package gst

// =============================================================================
// State codes (GST State Code List, first two digits of every GSTIN)
// Keys are the display names as commerce platforms send them in the address
// "province" field. Matching is exact and case-sensitive.
// =============================================================================

var stateCodes = map[string]string{
	"Jammu and Kashmir":                        "01",
	"Himachal Pradesh":                         "02",
	"Punjab":                                   "03",
	"Chandigarh":                               "04",
	"Uttarakhand":                              "05",
	"Haryana":                                  "06",
	"Delhi":                                    "07",
	"Rajasthan":                                "08",
	"Uttar Pradesh":                            "09",
	"Bihar":                                    "10",
	"Sikkim":                                   "11",
	"Arunachal Pradesh":                        "12",
	"Nagaland":                                 "13",
	"Manipur":                                  "14",
	"Mizoram":                                  "15",
	"Tripura":                                  "16",
	"Meghalaya":                                "17",
	"Assam":                                    "18",
	"West Bengal":                              "19",
	"Jharkhand":                                "20",
	"Odisha":                                   "21",
	"Chhattisgarh":                             "22",
	"Madhya Pradesh":                           "23",
	"Gujarat":                                  "24",
	"Dadra and Nagar Haveli and Daman and Diu": "26",
	"Maharashtra":                              "27",
	"Karnataka":                                "29",
	"Goa":                                      "30",
	"Lakshadweep":                              "31",
	"Kerala":                                   "32",
	"Tamil Nadu":                               "33",
	"Puducherry":                               "34",
	"Andaman and Nicobar Islands":              "35",
	"Telangana":                                "36",
	"Andhra Pradesh":                           "37",
	"Ladakh":                                   "38",
}

// stateNames is the reverse index of stateCodes, built once at init.
var stateNames = func() map[string]string {
	m := make(map[string]string, len(stateCodes))
	for name, code := range stateCodes {
		m[code] = name
	}
	return m
}()

// StateCode returns the two-digit GST code for a state display name.
// Unknown or empty names return ok=false.
func StateCode(name string) (code string, ok bool) {
	code, ok = stateCodes[name]
	return code, ok
}

// StateName returns the display name for a two-digit GST state code.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// IsValidStateCode reports whether code is a known GST state code.
func IsValidStateCode(code string) bool {
	_, ok := stateNames[code]
	return ok
}
