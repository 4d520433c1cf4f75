package lexicon

// Built-in tables used when a data file is absent or unreadable.
// Each call builds fresh values so no caller can alter another's copy.

// DefaultDictionary returns the built-in word list.
func DefaultDictionary() *Dictionary {
	return NewDictionary([]string{
		"malagasy", "teny", "trano", "vary", "rano", "fihavanana",
		"vahiny", "tsara", "ratsy", "lehibe", "kely", "ankehitriny",
		"omaly", "rahampitso", "miaramila", "mpanabe", "mpianatra",
		"famadihana", "razana", "tanana", "antsirabe", "antananarivo",
		"toamasina", "mahajanga", "fianarantsoa", "toliary", "antsiranana",
		"manao", "manosika", "tosika", "mihira", "hira", "miasa", "asa",
		"mandeha", "lasa", "ho avy", "mipetraka", "mihinana", "misotro",
		"miteny", "manoratra", "mamaky", "mianatra", "manabe", "mikaroka",
		"mividy", "mivarotra", "mandoa", "mandray", "manome", "mitondra",
		"sakafo", "mofo", "hena", "voninkazo", "legioma", "voankazo",
		"fianakaviana", "ray", "reny", "zanaka", "anadahy", "anabavy",
		"dadabe", "nenibe", "zafy", "havana", "namana", "sakaizan",
		"fitiavana", "fankasitrahana", "fiadanana", "fahasoavana",
		"tsara fanahy", "be fitiavana", "mahay", "hendry", "marina",
		"fahamarinana", "rariny",
	})
}

// DefaultFrequencies returns the built-in word frequency table.
func DefaultFrequencies() *FrequencyTable {
	return NewFrequencyTable([]WordCount{
		{"ny", 100}, {"sy", 80}, {"amin", 70}, {"dia", 65}, {"fa", 60},
		{"no", 55}, {"tsy", 50}, {"aho", 45}, {"izy", 45}, {"ianao", 40},
		{"ho", 38}, {"amin'ny", 35}, {"izany", 33}, {"any", 30}, {"eto", 28},
		{"malagasy", 50}, {"trano", 25}, {"vary", 24}, {"rano", 23},
		{"fihavanana", 22}, {"tsara", 30}, {"ratsy", 15}, {"lehibe", 20},
		{"manao", 35}, {"mihinana", 28}, {"misotro", 26}, {"miteny", 24},
		{"ahoana", 32}, {"inona", 30}, {"aiza", 28}, {"oviana", 20},
		{"iza", 25}, {"nahoana", 22}, {"firy", 18},
	})
}

// DefaultNgrams returns the built-in n-gram table.
func DefaultNgrams() *NgramTable {
	row := func(key ContextKey, next ...WordCount) NgramRow {
		return NgramRow{Context: key, Next: next}
	}
	return NewNgramTable([]NgramRow{
		row(NewContextKey("ny"), WordCount{"trano", 5}, WordCount{"tanana", 4}, WordCount{"vary", 3}, WordCount{"rano", 3}),
		row(NewContextKey("ny", "trano"), WordCount{"lehibe", 3}, WordCount{"kely", 2}, WordCount{"tsara", 2}),
		row(NewContextKey("tsara", "fanahy"), WordCount{"dia", 2}, WordCount{"sy", 1}),
		row(NewContextKey("misy"), WordCount{"olona", 4}, WordCount{"zavatra", 3}, WordCount{"fotoana", 2}),
		row(NewContextKey("manao"), WordCount{"ahoana", 10}, WordCount{"inona", 5}, WordCount{"asa", 3}),
		row(NewContextKey("manao", "ahoana"), WordCount{"ianao", 8}, WordCount{"ry", 6}, WordCount{"hianareo", 3}),
		row(NewContextKey("misaotra"), WordCount{"betsaka", 6}, WordCount{"indrindra", 4}, WordCount{"anao", 3}),
		row(NewContextKey("tonga"), WordCount{"soa", 5}, WordCount{"eto", 4}, WordCount{"any", 2}),
		row(NewContextKey("tonga", "soa"), WordCount{"amin", 3}, WordCount{"ianareo", 2}),
		row(NewContextKey("faly"), WordCount{"aho", 3}, WordCount{"isika", 2}, WordCount{"izy", 2}),
		row(NewContextKey("miteny"), WordCount{"malagasy", 6}, WordCount{"frantsay", 3}, WordCount{"anglisy", 2}),
		row(NewContextKey("mandeha"), WordCount{"any", 4}, WordCount{"amin", 3}, WordCount{"ho", 2}),
		row(NewContextKey("mihinana"), WordCount{"vary", 5}, WordCount{"sakafo", 4}, WordCount{"mofo", 2}),
		row(NewContextKey("fihavanana"), WordCount{"malagasy", 4}, WordCount{"dia", 2}, WordCount{"no", 2}),
	})
}

// DefaultTranslations returns the built-in Malagasy to French table.
func DefaultTranslations() *TranslationTable {
	return NewTranslationTable([]Pair{
		// greetings and common expressions
		{"salama", "bonjour"},
		{"veloma", "au revoir"},
		{"misaotra", "merci"},
		{"misaotra betsaka", "merci beaucoup"},
		{"azafady", "excusez-moi / s'il vous plaît"},
		{"manao ahoana", "comment allez-vous"},
		{"tsara", "bien / bon"},
		{"ratsy", "mauvais"},
		{"eny", "oui"},
		{"tsia", "non"},

		// family
		{"fianakaviana", "famille"},
		{"ray", "père"},
		{"reny", "mère"},
		{"zanaka", "enfant"},
		{"anadahy", "frère (pour une femme)"},
		{"anabavy", "sœur (pour un homme)"},
		{"rahalahy", "frère (pour un homme)"},
		{"rahavavy", "sœur (pour une femme)"},
		{"dadabe", "grand-père"},
		{"nenibe", "grand-mère"},
		{"zafy", "petit-enfant"},
		{"razana", "ancêtre"},

		// basic words
		{"trano", "maison"},
		{"tanana", "ville / main"},
		{"vary", "riz"},
		{"rano", "eau"},
		{"sakafo", "nourriture"},
		{"mofo", "pain"},
		{"hena", "viande"},
		{"voninkazo", "fleur"},
		{"hazo", "arbre / bois"},
		{"tany", "terre / pays"},
		{"lanitra", "ciel"},
		{"masoandro", "soleil"},
		{"volana", "lune / mois"},
		{"kintana", "étoile"},
		{"orana", "pluie"},
		{"rivotra", "vent"},

		// size and quantity
		{"lehibe", "grand"},
		{"kely", "petit"},
		{"maro", "beaucoup"},
		{"vitsy", "peu"},
		{"iray", "un"},
		{"roa", "deux"},
		{"telo", "trois"},
		{"efatra", "quatre"},
		{"dimy", "cinq"},

		// time
		{"ankehitriny", "maintenant"},
		{"omaly", "hier"},
		{"rahampitso", "demain"},
		{"maraina", "matin"},
		{"tolakandro", "midi"},
		{"hariva", "soir"},
		{"alina", "nuit"},

		// verbs
		{"manao", "faire"},
		{"mandeha", "partir / aller"},
		{"mihinana", "manger"},
		{"misotro", "boire"},
		{"miteny", "parler"},
		{"mihaino", "écouter"},
		{"mijery", "regarder"},
		{"manoratra", "écrire"},
		{"mamaky", "lire"},
		{"mianatra", "étudier / apprendre"},
		{"manabe", "enseigner"},
		{"miasa", "travailler"},
		{"matory", "dormir"},
		{"mifoha", "se réveiller"},
		{"mipetraka", "rester / habiter"},
		{"mihira", "chanter"},
		{"mandihy", "danser"},
		{"milalao", "jouer"},

		// places
		{"antananarivo", "Antananarivo (capitale)"},
		{"antsirabe", "Antsirabe"},
		{"toamasina", "Toamasina"},
		{"mahajanga", "Mahajanga"},
		{"fianarantsoa", "Fianarantsoa"},
		{"toliary", "Toliary (Tuléar)"},
		{"antsiranana", "Antsiranana (Diego-Suarez)"},

		// culture
		{"fihavanana", "solidarité familiale / lien social"},
		{"famadihana", "retournement des morts (cérémonie)"},
		{"kabary", "discours traditionnel"},
		{"mpikabary", "orateur traditionnel"},
		{"hira gasy", "chanson malgache"},
		{"vary amin'anana", "riz aux brèdes (plat)"},
		{"romazava", "soupe malgache"},

		// adjectives
		{"tsara fanahy", "gentil"},
		{"be fitiavana", "aimant"},
		{"mahay", "capable / habile"},
		{"hendry", "sage / intelligent"},
		{"marina", "vrai / honnête"},
		{"diso", "faux / erreur"},
		{"fotsy", "blanc"},
		{"mainty", "noir"},
		{"mena", "rouge"},
		{"maitso", "vert"},

		// other
		{"vahiny", "étranger / invité"},
		{"olona", "personne / gens"},
		{"zavatra", "chose"},
		{"fotoana", "temps / moment"},
		{"toerana", "lieu / place"},
		{"fitiavana", "amour"},
		{"fiadanana", "paix"},
		{"fahasoavana", "bonheur / grâce"},
		{"fahamarinana", "vérité"},
		{"rariny", "justice"},
	})
}

// DefaultGazetteer returns the built-in gazetteer for one of the known
// names, or nil.
func DefaultGazetteer(name string) *Gazetteer {
	typ, ok := TypeFor(name)
	if !ok {
		return nil
	}
	var entries []GazetteerEntry
	switch name {
	case GazetteerCities:
		entries = defaultCities()
	case GazetteerRegions:
		entries = defaultRegions()
	case GazetteerPersonalities:
		entries = defaultPersonalities()
	case GazetteerOrganizations:
		entries = defaultOrganizations()
	}
	return NewGazetteer(name, typ, entries)
}

// DefaultGazetteers returns all four built-in gazetteers in scan order.
func DefaultGazetteers() []*Gazetteer {
	names := GazetteerNames()
	out := make([]*Gazetteer, len(names))
	for i, name := range names {
		out[i] = DefaultGazetteer(name)
	}
	return out
}

func entry(name string, kv ...string) GazetteerEntry {
	info := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		info[kv[i]] = kv[i+1]
	}
	return GazetteerEntry{Name: name, Info: info}
}

func defaultCities() []GazetteerEntry {
	return []GazetteerEntry{
		entry("antananarivo", "type", "ville", "region", "Analamanga", "label", "Capitale"),
		entry("antsirabe", "type", "ville", "region", "Vakinankaratra"),
		entry("toamasina", "type", "ville", "region", "Atsinanana", "label", "Port principal"),
		entry("mahajanga", "type", "ville", "region", "Boeny"),
		entry("fianarantsoa", "type", "ville", "region", "Haute Matsiatra"),
		entry("toliary", "type", "ville", "region", "Atsimo-Andrefana", "alias", "tuléar"),
		entry("antsiranana", "type", "ville", "region", "Diana", "alias", "diego-suarez"),
		entry("ambositra", "type", "ville", "region", "Amoron'i Mania"),
		entry("morondava", "type", "ville", "region", "Menabe"),
		entry("nosy be", "type", "ville", "region", "Diana", "label", "Île touristique"),
		entry("manakara", "type", "ville", "region", "Vatovavy-Fitovinany"),
		entry("fort dauphin", "type", "ville", "region", "Anosy", "alias", "tôlanaro"),
		entry("tamatave", "type", "ville", "alias", "toamasina"),
	}
}

func defaultRegions() []GazetteerEntry {
	return []GazetteerEntry{
		entry("analamanga", "type", "region", "capital", "Antananarivo"),
		entry("vakinankaratra", "type", "region", "capital", "Antsirabe"),
		entry("itasy", "type", "region"),
		entry("bongolava", "type", "region"),
		entry("vatovavy-fitovinany", "type", "region"),
		entry("haute matsiatra", "type", "region"),
		entry("atsimo-atsinanana", "type", "region"),
		entry("ihorombe", "type", "region"),
		entry("atsimo-andrefana", "type", "region"),
		entry("menabe", "type", "region"),
		entry("boeny", "type", "region"),
		entry("sofia", "type", "region"),
		entry("diana", "type", "region"),
		entry("sava", "type", "region"),
	}
}

func defaultPersonalities() []GazetteerEntry {
	return []GazetteerEntry{
		entry("andrianampoinimerina", "type", "personnalité", "category", "roi", "period", "historique"),
		entry("ranavalona", "type", "personnalité", "category", "reine", "period", "historique"),
		entry("radama", "type", "personnalité", "category", "roi", "period", "historique"),
		entry("rainilaiarivony", "type", "personnalité", "category", "premier ministre", "period", "historique"),
		entry("philibert tsiranana", "type", "personnalité", "category", "président", "period", "moderne"),
		entry("didier ratsiraka", "type", "personnalité", "category", "président", "period", "moderne"),
		entry("marc ravalomanana", "type", "personnalité", "category", "président", "period", "moderne"),
		entry("andry rajoelina", "type", "personnalité", "category", "président", "period", "contemporain"),
		entry("jean verdi salomon rakotomalala", "type", "personnalité", "category", "musicien"),
		entry("rakoto frah", "type", "personnalité", "category", "musicien"),
		entry("rossy", "type", "personnalité", "category", "musicien"),
	}
}

func defaultOrganizations() []GazetteerEntry {
	return []GazetteerEntry{
		entry("université d'antananarivo", "type", "organisation", "category", "université"),
		entry("jirama", "type", "organisation", "category", "service public"),
		entry("air madagascar", "type", "organisation", "category", "compagnie aérienne"),
		entry("banque centrale de madagascar", "type", "organisation", "category", "banque"),
	}
}
