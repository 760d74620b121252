package quran

// Surahs lists every surah with the physical page it starts on. Page 1 is the
// blank cover, so the text starts on page 2.
var Surahs = [...]Surah{
	{1, "Al-Fatihah", 2},
	{2, "Al-Baqarah", 3},
	{3, "Aal-E-Imran", 51},
	{4, "An-Nisa", 78},
	{5, "Al-Maidah", 107},
	{6, "Al-Anam", 129},
	{7, "Al-Araf", 152},
	{8, "Al-Anfal", 178},
	{9, "At-Tawbah", 188},
	{10, "Yunus", 209},
	{11, "Hud", 222},
	{12, "Yusuf", 236},
	{13, "Ar-Rad", 250},
	{14, "Ibrahim", 256},
	{15, "Al-Hijr", 263},
	{16, "An-Nahl", 268},
	{17, "Al-Isra", 283},
	{18, "Al-Kahf", 294},
	{19, "Maryam", 306},
	{20, "Ta-Ha", 313},
	{21, "Al-Anbiya", 323},
	{22, "Al-Hajj", 333},
	{23, "Al-Muminun", 343},
	{24, "An-Nur", 351},
	{25, "Al-Furqan", 360},
	{26, "Ash-Shuara", 368},
	{27, "An-Naml", 378},
	{28, "Al-Qasas", 386},
	{29, "Al-Ankabut", 396},
	{30, "Ar-Rum", 405},
	{31, "Luqman", 412},
	{32, "As-Sajdah", 416},
	{33, "Al-Ahzab", 419},
	{34, "Saba", 429},
	{35, "Fatir", 435},
	{36, "Ya-Sin", 441},
	{37, "As-Saffat", 447},
	{38, "Sad", 454},
	{39, "Az-Zumar", 459},
	{40, "Ghafir", 468},
	{41, "Fussilat", 478},
	{42, "Ash-Shura", 484},
	{43, "Az-Zukhruf", 490},
	{44, "Ad-Dukhan", 497},
	{45, "Al-Jathiyah", 500},
	{46, "Al-Ahqaf", 503},
	{47, "Muhammad", 508},
	{48, "Al-Fath", 512},
	{49, "Al-Hujurat", 516},
	{50, "Qaf", 519},
	{51, "Adh-Dhariyat", 521},
	{52, "At-Tur", 524},
	{53, "An-Najm", 527},
	{54, "Al-Qamar", 529},
	{55, "Ar-Rahman", 532},
	{56, "Al-Waqiah", 535},
	{57, "Al-Hadid", 538},
	{58, "Al-Mujadilah", 543},
	{59, "Al-Hashr", 546},
	{60, "Al-Mumtahanah", 550},
	{61, "As-Saf", 552},
	{62, "Al-Jumuah", 554},
	{63, "Al-Munafiqun", 555},
	{64, "At-Taghabun", 557},
	{65, "At-Talaq", 559},
	{66, "At-Tahrim", 561},
	{67, "Al-Mulk", 563},
	{68, "Al-Qalam", 565},
	{69, "Al-Haqqah", 567},
	{70, "Al-Maarij", 569},
	{71, "Nuh", 571},
	{72, "Al-Jinn", 573},
	{73, "Al-Muzzammil", 575},
	{74, "Al-Muddaththir", 576},
	{75, "Al-Qiyamah", 578},
	{76, "Al-Insan", 579},
	{77, "Al-Mursalat", 581},
	{78, "An-Naba", 583},
	{79, "An-Naziat", 584},
	{80, "Abasa", 586},
	{81, "At-Takwir", 587},
	{82, "Al-Infitar", 588},
	{83, "Al-Mutaffifin", 588},
	{84, "Al-Inshiqaq", 590},
	{85, "Al-Buruj", 591},
	{86, "At-Tariq", 592},
	{87, "Al-Ala", 592},
	{88, "Al-Ghashiyah", 593},
	{89, "Al-Fajr", 594},
	{90, "Al-Balad", 595},
	{91, "Ash-Shams", 596},
	{92, "Al-Layl", 597},
	{93, "Ad-Dhuha", 597},
	{94, "Ash-Sharh", 598},
	{95, "At-Tin", 598},
	{96, "Al-Alaq", 599},
	{97, "Al-Qadr", 600},
	{98, "Al-Bayyinah", 600},
	{99, "Az-Zalzalah", 601},
	{100, "Al-Adiyat", 601},
	{101, "Al-Qariah", 602},
	{102, "At-Takathur", 602},
	{103, "Al-Asr", 603},
	{104, "Al-Humazah", 603},
	{105, "Al-Fil", 603},
	{106, "Quraysh", 604},
	{107, "Al-Maun", 604},
	{108, "Al-Kawthar", 604},
	{109, "Al-Kafirun", 605},
	{110, "An-Nasr", 605},
	{111, "Al-Masad", 605},
	{112, "Al-Ikhlas", 606},
	{113, "Al-Falaq", 606},
	{114, "An-Nas", 606},
}
