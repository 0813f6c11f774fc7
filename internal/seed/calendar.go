package seed

// calendarEvent is one entry of the 5786 (2025–2026) default calendar.
type calendarEvent struct {
	Name     string
	Category string
	Date     string
}

var defaultCalendar = []calendarEvent{
	{"Roch Hachana", "FETES DE TICHRI", "2025-09-23"},
	{"Shabat Vayeleh", "SHABAT", "2025-09-27"},
	{"Berakhot de l'annee", "AUTRES", "2025-09-23"},
	{"Places Femme Yom Kippour", "FETES DE TICHRI", "2025-10-02"},
	{"Places Hommes Yom Kippour", "FETES DE TICHRI", "2025-10-02"},
	{"Yom Kipour", "FETES DE TICHRI", "2025-10-02"},
	{"Hatan Torah + Berichit + Meona", "FETES DE TICHRI", "2025-10-15"},
	{"Shabat Haazinou", "SHABAT", "2025-10-04"},
	{"Soucot", "FETES DE TICHRI", "2025-10-07"},
	{"Shabat Soucot", "FETES DE TICHRI", "2025-10-11"},
	{"Simha Torah - Chemini Atseret", "FETES DE TICHRI", "2025-10-15"},
	{"Shabat Berechit", "SHABAT", "2025-10-18"},
	{"Shabat Noah", "SHABAT", "2025-10-25"},
	{"Shabat Leh Leha", "SHABAT", "2025-11-01"},
	{"Shabat Vayera", "SHABAT", "2025-11-08"},
	{"Shabat Haye Sarah", "SHABAT", "2025-11-15"},
	{"Shabat Toledot", "SHABAT", "2025-11-22"},
	{"Shabat Vayexe", "SHABAT", "2025-11-29"},
	{"Shabat Vayishlah", "SHABAT", "2025-12-06"},
	{"Shabat Vayeshev", "SHABAT", "2025-12-13"},
	{"Shabat Miketz", "SHABAT", "2025-12-20"},
	{"Shabat Vayigach", "SHABAT", "2025-12-27"},
	{"Shabat Vayehi", "SHABAT", "2026-01-03"},
	{"Shemot", "SHABAT", "2026-01-10"},
	{"Vaera", "SHABAT", "2026-01-17"},
	{"Bo", "SHABAT", "2026-01-24"},
	{"Bechalah", "SHABAT", "2026-01-31"},
	{"Ytro", "SHABAT", "2026-02-07"},
	{"Michpatim", "SHABAT", "2026-02-14"},
	{"Terouma", "SHABAT", "2026-02-21"},
	{"Tetsave", "SHABAT", "2026-02-28"},
	{"Kitissa", "SHABAT", "2026-03-07"},
	{"Vayekel", "SHABAT", "2026-03-14"},
	{"Pekoudei", "SHABAT", "2026-03-14"},
	{"Vayikra", "SHABAT", "2026-03-21"},
	{"Xav", "SHABAT", "2026-03-28"},
	{"Shabat Pessah (1ere Fete)", "FETES", "2026-04-02"},
	{"Pessah (2eme Fete)", "FETES", "2026-04-09"},
	{"Shabat Chemini", "SHABAT", "2026-04-18"},
	{"Shabat Tazria-Metsora", "SHABAT", "2026-04-25"},
	{"Shabat Aharei Mot-Kedochim", "SHABAT", "2026-05-02"},
	{"Shabat Emor", "SHABAT", "2026-05-09"},
	{"Shabat Behar-Behoukotay", "SHABAT", "2026-05-16"},
	{"Shabat Bamidbar", "SHABAT", "2026-05-23"},
	{"Chavouot", "FETES", "2026-05-22"},
	{"Shabat Nasso", "SHABAT", "2026-05-30"},
	{"Shabat Bealotekha", "SHABAT", "2026-06-06"},
	{"Shabat Shelah", "SHABAT", "2026-06-13"},
	{"Shabat Korah", "SHABAT", "2026-06-20"},
	{"Shabat Houkat", "SHABAT", "2026-06-27"},
	{"Shabat Balak", "SHABAT", "2026-07-04"},
	{"Pinhas", "SHABAT", "2026-07-11"},
	{"Shabat Matot-Maasei", "SHABAT", "2026-07-18"},
	{"Shabat Devarim", "SHABAT", "2026-07-25"},
	{"Shabat Vaethanane", "SHABAT", "2026-08-01"},
	{"Shabat Ekev", "SHABAT", "2026-08-08"},
	{"Shabat Ree", "SHABAT", "2026-08-15"},
	{"Shabat Choftim", "SHABAT", "2026-08-22"},
	{"Shabat Ki tetse", "SHABAT", "2026-08-29"},
	{"Shabat Ki tavo", "SHABAT", "2026-09-05"},
	{"Shabat Nitsavim", "SHABAT", "2026-09-12"},
}
