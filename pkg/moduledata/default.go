package moduledata

// DefaultMapping is the alias table written to mapping.json on first run.
// Book numbers follow the MyBible scheme.
var DefaultMapping = Mapping{
	{Book: 10, Names: []string{"Genesis", "1 Moses", "I Moses", "Gen", "Ge", "Gn", "1M"}},
	{Book: 20, Names: []string{"Exodus", "2 Moses", "II Moses", "Exo", "Exod", "Ex", "2M"}},
	{Book: 30, Names: []string{"Leviticus", "3 Moses", "III Moses", "Lev", "Lv", "Le", "3M"}},
	{Book: 40, Names: []string{"Numbers", "4 Moses", "IV Moses", "Num", "Nu", "Nm", "Nb", "4M"}},
	{Book: 50, Names: []string{"Deuteronomy", "5 Moses", "V Moses", "Deu", "Deut", "Dt", "5M"}},
	{Book: 60, Names: []string{"Joshua", "Jos", "Josh", "Jsh"}},
	{Book: 70, Names: []string{"Judges", "Jdg", "Judg", "Jdgs"}},
	{Book: 80, Names: []string{"Ruth", "Rut", "Ru", "Rth"}},
	{Book: 90, Names: []string{"1 Samuel", "I Samuel", "1Sa", "1Sam", "1 Sm", "I Sam", "I Sm"}},
	{Book: 100, Names: []string{"2 Samuel", "II Samuel", "2Sa", "2Sam", "2 Sm", "II Sam", "II Sm"}},
	{Book: 110, Names: []string{"1 Kings", "I Kings", "1Ki", "1Kgs", "1Kin", "I Ki", "I Kgs", "I Kin"}},
	{Book: 120, Names: []string{"2 Kings", "II Kings", "2Ki", "2Kgs", "2Kin", "II Ki", "II Kgs", "II Kin"}},
	{Book: 130, Names: []string{"1 Chronicles", "I Chronicles", "1Ch", "1Chr", "1 Ch", "1 Chron", "I Ch", "I Chr", "I Chron"}},
	{Book: 140, Names: []string{"2 Chronicles", "II Chronicles", "2Ch", "2Chr", "2 Ch", "2 Chron", "II Ch", "II Chr", "II Chron"}},
	{Book: 150, Names: []string{"Ezra", "Ezr", "Ez"}},
	{Book: 160, Names: []string{"Nehemiah", "Neh", "Ne"}},
	{Book: 165, Names: []string{"1 Esdras", "I Esdras", "1Es", "1Esd", "I Es", "I Esd"}},
	{Book: 166, Names: []string{"2 Esdras", "II Esdras", "2Es", "2Esd", "II Es", "II Esd"}},
	{Book: 170, Names: []string{"Tobit", "Tob"}},
	{Book: 180, Names: []string{"Judith", "Jdt", "Jdth"}},
	{Book: 190, Names: []string{"Esther", "Est", "Esth", "Es"}},
	{Book: 192, Names: []string{"Greek Esther", "Additions to Esther", "Esg", "AddEsth", "EstGr", "GrEsth"}},
	{Book: 220, Names: []string{"Job", "Jb"}},
	{Book: 230, Names: []string{"Psalms", "Psalm", "Psa", "Ps", "Pslm"}},
	{Book: 232, Names: []string{"Psalm 151", "Ps2", "Ps151"}},
	{Book: 235, Names: []string{"Psalms of Solomon", "PSS"}},
	{Book: 240, Names: []string{"Proverbs", "Pro", "Prov", "Prv", "Pr"}},
	{Book: 245, Names: []string{"Odae", "Odas", "Oda"}},
	{Book: 250, Names: []string{"Ecclesiastes", "Qoholeth", "Ecc", "Eccl", "Qoh", "Eccles"}},
	{Book: 260, Names: []string{"Song of Songs", "Song of Solomon", "Canticles of Canticles", "Sng", "Song", "Sg", "SOS", "Cant", "COC"}},
	{Book: 270, Names: []string{"Wisdom of Solomon", "Wis", "Wisd"}},
	{Book: 280, Names: []string{"Sirach", "Ecclesiasticus", "Sir", "Ecclus"}},
	{Book: 290, Names: []string{"Isaiah", "Isa", "Is"}},
	{Book: 300, Names: []string{"Jeremiah", "Jer", "Je", "Jr", "Jrm"}},
	{Book: 305, Names: []string{"Prayer of Azariah", "Azariah", "Aza", "PrAzar", "PrAz", "Azar"}},
	{Book: 310, Names: []string{"Lamentations", "Lam", "La", "Lament"}},
	{Book: 315, Names: []string{"Letter of Jeremiah", "Epistle of Jeremiah", "Lje", "EpJer", "LetJer", "LJ"}},
	{Book: 320, Names: []string{"Baruch", "1 Baruch", "I Baruch", "Bar", "Br"}},
	{Book: 321, Names: []string{"2 Baruch", "2Ba"}},
	{Book: 322, Names: []string{"3 Baruch", "3Ba"}},
	{Book: 323, Names: []string{"Song of the 3 Young Men", "Song of the Three Young Men", "S3Y", "SgThree", "Sg3"}},
	{Book: 325, Names: []string{"Susanna", "Sus"}},
	{Book: 330, Names: []string{"Ezekiel", "Ezk", "Ezek", "Eze"}},
	{Book: 340, Names: []string{"Daniel", "Dan", "Da", "Dn"}},
	{Book: 345, Names: []string{"Bel and the Dragon", "Bel"}},
	{Book: 350, Names: []string{"Hosea", "Hos", "Ho"}},
	{Book: 360, Names: []string{"Joel", "Jol", "Jl"}},
	{Book: 370, Names: []string{"Amos", "Amo", "Am"}},
	{Book: 380, Names: []string{"Obadiah", "Oba", "Obad", "Ob"}},
	{Book: 390, Names: []string{"Jonah", "Jon", "Jona"}},
	{Book: 400, Names: []string{"Micah", "Mic", "Mi", "Mc"}},
	{Book: 410, Names: []string{"Nahum", "Nam", "Nah", "Na"}},
	{Book: 420, Names: []string{"Habakkuk", "Hab", "Hb"}},
	{Book: 430, Names: []string{"Zephaniah", "Zep", "Zp"}},
	{Book: 440, Names: []string{"Haggai", "Hag", "Hg"}},
	{Book: 450, Names: []string{"Zechariah", "Zec", "Zech", "Zch"}},
	{Book: 460, Names: []string{"Malachi", "Mal", "Ml"}},
	{Book: 462, Names: []string{"1 Maccabees", "1Ma", "1Macc", "1Mac", "I Mac", "I Macc"}},
	{Book: 464, Names: []string{"2 Maccabees", "2Ma", "2Macc", "2Mac", "II Mac", "II Macc"}},
	{Book: 466, Names: []string{"3 Maccabees", "3Ma", "3Macc", "3Mac", "III Mac", "III Macc"}},
	{Book: 467, Names: []string{"4 Maccabees", "4Ma", "4Macc", "4Mac", "IV Mac", "IV Macc"}},
	{Book: 468, Names: []string{"2 Esdras", "2Es", "2Esd", "II Es", "II Esd"}},
	{Book: 470, Names: []string{"Matthew", "Mat", "Matt", "Mt"}},
	{Book: 480, Names: []string{"Mark", "Mrk", "Mar", "Mk"}},
	{Book: 490, Names: []string{"Luke", "Luk", "Lk", "Lu"}},
	{Book: 500, Names: []string{"John", "Jhn", "Jn"}},
	{Book: 510, Names: []string{"Acts", "Act", "Ac"}},
	{Book: 511, Names: []string{"Didache", "Did"}},
	{Book: 520, Names: []string{"Romans", "Rom", "Ro", "Rm"}},
	{Book: 530, Names: []string{"1 Corinthians", "I Corinthians", "1Co", "1Cor", "I Co", "I Cor"}},
	{Book: 540, Names: []string{"2 Corinthians", "II Corinthians", "2Co", "2Cor", "II Co", "II Cor"}},
	{Book: 550, Names: []string{"Galatians", "Gal", "Ga"}},
	{Book: 560, Names: []string{"Ephesians", "Eph"}},
	{Book: 570, Names: []string{"Philippians", "Php", "Phil", "Phlp"}},
	{Book: 580, Names: []string{"Colossians", "Col"}},
	{Book: 590, Names: []string{"1 Thessalonians", "I Thessalonians", "1Th", "1Thess", "1Ths", "1 Thes", "I Th", "I Thess", "I Ths", "I Thes"}},
	{Book: 600, Names: []string{"2 Thessalonians", "II Thessalonians", "2Th", "2Thess", "2Ths", "2 Thes", "II Th", "II Thess", "II Ths", "II Thes"}},
	{Book: 610, Names: []string{"1 Timothy", "I Timothy", "1Ti", "1Tim", "I Ti", "I Tim"}},
	{Book: 620, Names: []string{"2 Timothy", "II Timothy", "2Ti", "2Tim", "II Ti", "II Tim"}},
	{Book: 630, Names: []string{"Titus", "Tit", "Tt"}},
	{Book: 640, Names: []string{"Philemon", "Phm", "Phlm"}},
	{Book: 650, Names: []string{"Hebrews", "Heb", "He"}},
	{Book: 660, Names: []string{"James", "Jas", "Jam", "Jms", "Ja"}},
	{Book: 670, Names: []string{"1 Peter", "I Peter", "1Pe", "1Pet", "1 Pt", "I Pe", "I Pet", "I Pt"}},
	{Book: 680, Names: []string{"2 Peter", "II Peter", "2Pe", "2Pet", "2 Pt", "II Pe", "II Pet", "II Pt"}},
	{Book: 690, Names: []string{"1 John", "I John", "1Jn", "I Jn"}},
	{Book: 700, Names: []string{"2 John", "II John", "2Jn", "II Jn"}},
	{Book: 710, Names: []string{"3 John", "III John", "3Jn", "III Jn"}},
	{Book: 720, Names: []string{"Jude", "Jud", "Jd"}},
	{Book: 730, Names: []string{"Revelation", "Apocalypse", "Rev", "Re", "Revel", "Apoc"}},
	{Book: 780, Names: []string{"Letter to the Laodiceans", "Laodiceans", "Lao"}},
	{Book: 790, Names: []string{"Prayer of Manasseh", "Man", "PrMan"}},
}
