package catalog

// Static curriculum tables for the BRACU undergraduate template. The unlock
// graph maps a course to the courses it is a prerequisite for.

var Unlocks = map[string][]string{
	// Math
	"MAT110": {"MAT120"},
	"MAT120": {"MAT215", "MAT216"},
	"MAT215": {},
	"MAT216": {"CSE330", "CSE423"},

	// Physics
	"PHY111": {"PHY112"},
	"PHY112": {"CSE250"},

	// English
	"ENG101": {"ENG102"},
	"ENG102": {"ENG103"},
	"ENG103": {},

	// Core CSE
	"CSE110": {"CSE111"},
	"CSE111": {"CSE220"},
	"CSE220": {"CSE221"},
	"CSE221": {"CSE321", "CSE331", "CSE370", "CSE422"},
	"CSE230": {},
	"CSE250": {"CSE251"},
	"CSE251": {"CSE260", "CSE350"},
	"CSE260": {"CSE340", "CSE341", "CSE460", "CSE461"},
	"CSE340": {"CSE341", "CSE420"},
	"CSE341": {"CSE360", "CSE461"},
	"CSE320": {"CSE421"},
	"CSE350": {},
	"CSE360": {"CSE461"},
	"CSE370": {"CSE470", "CSE471"},
	"CSE420": {},
	"CSE421": {"CSE400"},
	"CSE422": {"CSE400"},
	"CSE423": {},
	"CSE460": {},
	"CSE461": {},
	"CSE470": {"CSE400"},
	"CSE471": {},
	"CSE321": {"CSE420"},
	"CSE331": {"CSE420"},
	"CSE400": {},
	"CSE330": {},

	// CSE electives
	"CSE310": {}, "CSE342": {}, "CSE371": {}, "CSE390": {},
	"CSE391": {}, "CSE392": {}, "CSE410": {}, "CSE419": {},
	"CSE424": {}, "CSE425": {}, "CSE426": {}, "CSE427": {},
	"CSE428": {}, "CSE429": {}, "CSE430": {}, "CSE431": {},
	"CSE432": {}, "CSE462": {}, "CSE472": {}, "CSE473": {},
	"CSE474": {}, "CSE490": {}, "CSE491": {},

	// General education
	"HUM101": {}, "HUM102": {}, "HUM103": {}, "HST102": {},
	"HST104": {}, "HUM207": {}, "BNG103": {}, "EMB101": {},
	"ENG113": {}, "ENG114": {}, "ENG115": {}, "ENG333": {},
	"STA201": {},

	// Science
	"CHE101": {}, "BIO101": {}, "ENV103": {},

	// Social science
	"PSY101": {}, "SOC101": {}, "ANT101": {}, "POL101": {},
	"BUS201": {}, "ECO101": {}, "ECO102": {}, "ECO105": {},
	"BUS102": {}, "POL102": {}, "DEV104": {}, "POL201": {},
	"SOC201": {}, "ANT342": {}, "ANT351": {}, "BUS333": {},

	// CST
	"CST301": {}, "CST302": {}, "CST303": {}, "CST304": {}, "CST305": {},
	"CST306": {}, "CST307": {}, "CST308": {}, "CST309": {}, "CST310": {},
}

var CoreCSE = set(
	"CSE110", "CSE111", "CSE220", "CSE221", "CSE230", "CSE250",
	"CSE251", "CSE260", "CSE320", "CSE321", "CSE330", "CSE331",
	"CSE340", "CSE341", "CSE350", "CSE360", "CSE370", "CSE420",
	"CSE421", "CSE422", "CSE423", "CSE460", "CSE461", "CSE470", "CSE471",
)

// CoreCS is the CS-program core: the CSE core minus the hardware-leaning
// courses the CS stream does not take.
var CoreCS = minus(CoreCSE, "CSE250", "CSE251", "CSE320", "CSE341", "CSE350", "CSE360")

var Electives = set(
	"CSE310", "CSE342", "CSE371", "CSE390", "CSE391", "CSE392",
	"CSE410", "CSE419", "CSE424", "CSE425", "CSE426", "CSE427",
	"CSE428", "CSE429", "CSE430", "CSE431", "CSE432", "CSE462",
	"CSE472", "CSE473", "CSE474", "CSE490", "CSE491",
)

var CompulsoryGenEd = set(
	"PHY111", "PHY112", "ENG101", "ENG102", "MAT110", "MAT120",
	"MAT215", "MAT216", "STA201", "HUM103", "BNG103", "EMB101",
)

var ScienceStream = set("CHE101", "BIO101", "ENV103")

var ArtsStream = set(
	"HUM101", "HUM102", "HST102", "HST104", "HUM207",
	"ENG113", "ENG114", "ENG115", "ENG333", "ENG103",
)

var SocialScienceStream = set(
	"PSY101", "SOC101", "ANT101", "POL101", "BUS201",
	"ECO101", "ECO102", "ECO105", "BUS102", "POL102",
	"DEV104", "POL201", "SOC201", "ANT342", "ANT351", "BUS333",
)

var CSTStream = set(
	"CST301", "CST302", "CST303", "CST304", "CST305",
	"CST306", "CST307", "CST308", "CST309", "CST310",
)

var Names = map[string]string{
	"MAT110": "Mathematics I",
	"MAT120": "Mathematics II",
	"MAT215": "Statistics and Probability",
	"MAT216": "Discrete Mathematics",

	"PHY111": "Physics I",
	"PHY112": "Physics II",

	"ENG101": "English Composition I",
	"ENG102": "English Composition II",
	"ENG103": "Report Writing",

	"CSE110": "Programming Language I",
	"CSE111": "Programming Language II",
	"CSE220": "Data Structures",
	"CSE221": "Algorithms",
	"CSE230": "Digital Logic Design",
	"CSE250": "Circuits and Electronics",
	"CSE251": "Electronic Devices and Circuits",
	"CSE260": "Digital Electronics and Pulse Techniques",
	"CSE320": "Data Communication",
	"CSE321": "Computer Networks",
	"CSE330": "Numerical Methods",
	"CSE331": "Microprocessor Interfacing & Embedded System",
	"CSE340": "Computer Architecture",
	"CSE341": "Microprocessors",
	"CSE350": "Software Engineering",
	"CSE360": "Database Management System",
	"CSE370": "Operating System",
	"CSE400": "Project/Thesis",
	"CSE420": "Compiler",
	"CSE421": "Computer Networks",
	"CSE422": "Artificial Intelligence",
	"CSE423": "Computer Graphics",
	"CSE460": "Algorithm Engineering",
	"CSE461": "Database Management System II",
	"CSE470": "Software Engineering",
	"CSE471": "System Analysis and Design",

	"HUM103": "Bangladesh Studies",
	"BNG103": "Bangla",
	"EMB101": "Microbiology",
	"STA201": "Business Statistics",

	"CHE101": "General Chemistry",
	"BIO101": "General Biology",
	"ENV103": "Environmental Science",
}

// CapstoneCode is the only course with a non-default credit weight.
const CapstoneCode = "CSE400"

const (
	defaultCredit  = 3
	capstoneCredit = 4
)

func set(codes ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

func minus(base map[string]struct{}, drop ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(base))
	for c := range base {
		m[c] = struct{}{}
	}
	for _, c := range drop {
		delete(m, c)
	}
	return m
}
