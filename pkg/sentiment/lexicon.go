package sentiment

// Lexicon holds the polarity word lists. Entries are lowercase.
type Lexicon struct {
	Positive     []string
	Negative     []string
	Intensifiers []string
	Negations    []string
}

// DefaultLexicon returns the built-in Malagasy polarity lists.
// Entries with spaces or hyphens are kept as listed; they never equal a
// single token.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"tsara", "faly", "sambatra", "mahafinaritra", "tsara tarehy",
			"mendrika", "mahay", "hendry", "marina", "tsara fanahy",
			"be fitiavana", "mahafaly", "mahagaga", "mahaliana",
			"fahasoavana", "fiadanana", "fitiavana", "fahafaham-po",
			"fahombiazana", "tanjona", "soa", "tonga soa", "misaotra",
			"mahazatra", "manam-pahaizana", "mahomby", "matanjaka",
			"fotsy", "madio", "manitra", "mamy", "tsara feo",
			"salama", "fahasalamana", "hafaliana", "fihobiana",
			"fameperana", "tombontsoa", "manan-danja", "sarobidy",
			"manintona", "mahavita",
		},
		Negative: []string{
			"ratsy", "malahelo", "malahelo be", "mahonena", "tsy tsara",
			"mampalahelo", "mahatsikaiky", "mahasosotra", "diso",
			"tsy marina", "mahadiso", "mampidi-doza", "mampatahotra",
			"mampitebiteby", "manahirana", "sarotra", "mora voan",
			"malemy", "maharary", "marary", "manaintaina", "maizina",
			"maloto", "maimbo", "mangidy", "maditra", "mahamenatra",
			"kivy", "latsaka", "very", "tapaka",
			"simba", "tsy misy", "tsy azo", "tsy hay", "tsy vita",
			"fahatezerana", "hatezerana", "fahavinirana", "faniratsirana",
			"fahadisoana", "tsy fahaizana", "tsy fahombiazana",
		},
		Intensifiers: []string{"be", "indrindra", "loatra", "tokoa", "mihitsy"},
		Negations:    []string{"tsy", "tsia"},
	}
}
