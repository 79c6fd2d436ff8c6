package lexicon

// DefaultConfig returns the built-in lexicon covering the languages the
// analyzer ships with. Callers extend or replace entries via LoadConfig.
func DefaultConfig() *Config {
	return &Config{
		Languages: map[string]Vocabulary{
			"no": {
				Concepts: []string{
					"yrkesskade", "erstatning", "ansvar", "forlik", "oppgjør",
					"skadevoldende", "årsakssammenheng", "bevisbyrde", "skyldnerkjennelse",
					"forsvarlig saksbehandling", "likebehandling", "forutberegnelighet",
				},
				Authorities: []string{
					"NAV", "Finanstilsynet", "Finansklagenemnda", "Høyesterett",
					"Lagmannsrett", "Tingrett", "Regjeringen", "Stortinget",
				},
				LegalTerms: []string{
					"vedtak", "klage", "ombud", "rettsmedisiner", "sakkyndig",
				},
			},
			"sv": {
				Concepts: []string{
					"arbetsskada", "ersättning", "ansvar", "förlikning", "skadestånd",
				},
				Authorities: []string{
					"Förvaltningsrätten", "Kammarrätten", "Högsta förvaltningsdomstolen",
				},
			},
			"da": {
				Concepts: []string{
					"arbejdsskade", "erstatning", "ansvar", "forlig", "skadeerstatning",
				},
				Authorities: []string{
					"Arbejdsskadestyrelsen", "Ankestyrelsen",
				},
			},
			"en": {
				Concepts: []string{
					"liability", "compensation", "settlement", "damages", "negligence",
				},
				Authorities: []string{
					"Supreme Court", "Court of Appeals", "District Court",
				},
			},
			"de": {
				Concepts: []string{
					"Haftung", "Entschädigung", "Vergleich", "Schadenersatz", "Fahrlässigkeit",
				},
				Authorities: []string{
					"Bundesgerichtshof", "Oberlandesgericht", "Landgericht",
				},
			},
			"fr": {
				Concepts: []string{
					"responsabilité", "indemnisation", "transaction", "dommages-intérêts",
				},
				Authorities: []string{
					"Cour de cassation", "Cour d'appel", "Tribunal de grande instance",
				},
			},
		},
		Markers: map[string]Markers{
			"no": {
				Connectors: []string{"men", "imidlertid", "derfor", "dersom", "hvis"},
				Negations:  []string{"ikke", "ingen", "aldri", "uten"},
				Modals:     []string{"må", "skal", "kan", "bør", "ville"},
			},
			"en": {
				Connectors: []string{"but", "however", "therefore", "if", "unless"},
				Negations:  []string{"not", "no", "never", "without"},
				Modals:     []string{"must", "shall", "can", "should", "would"},
			},
		},
		Settlement: map[string]SettlementVocab{
			"no": {
				Offer:  []string{"tilby", "tilbyr", "tilbud", "oppgjør", "betaling", "kompensasjon"},
				Denial: []string{"ikke ansvarlig", "benekter", "avviser", "bestrider", "ingen forpliktelse"},
			},
			"en": {
				Offer:  []string{"offer", "settlement", "payment", "compensation"},
				Denial: []string{"not liable", "deny", "reject", "dispute", "no obligation"},
			},
		},
		AuthorityRanks: map[string]int{
			"Høyesterett":       10,
			"Lagmannsrett":      8,
			"NAV":               7,
			"Tingrett":          6,
			"Finansklagenemnda": 5,
			"Finanstilsynet":    4,
			"insurance_company": 2,
		},
		TemporalPatterns: map[string][]string{
			"no": {
				`\b\d{1,2}\.\s*(januar|februar|mars|april|mai|juni|juli|august|september|oktober|november|desember)\s*\d{4}\b`,
				`\b(før|etter|under|i løpet av|siden)\b`,
				`\b(da|når|samtidig|deretter|tidligere)\b`,
			},
		},
	}
}
