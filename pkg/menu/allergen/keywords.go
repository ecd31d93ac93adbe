package allergen

// Keywords holds one lowercase Turkish keyword list per allergen category.
type Keywords struct {
	Gluten []string
	Milk   []string
	Egg    []string
	Fish   []string
}

// DefaultKeywords returns the built-in keyword lists. Entries include common
// misspellings and dotless-I variants seen in real menu data.
func DefaultKeywords() Keywords {
	return Keywords{
		Gluten: []string{
			"ekmek", "pide", "börek", "böreğ", "makarna", "spagetti", "bulgur", "un",
			"şehriye", "mantı", "simit", "galeta", "pane", "bisküvi", "kraker",
			"tarhana", "yulaf", "çavdar", "erişte", "lazanya", "canneloni",
			"ravioli", "fusilli", "farfalle", "tagliatelle", "şehriy", "canaloni",
		},
		Milk: []string{
			"süt", "yoğurt", "peynir", "peynır", "kaşar", "kasar", "krema",
			"tereyağ", "muhallebi", "cacık", "ayran", "beşamel", "labne", "lor",
			"parmesan", "mozarella", "mascarpone", "kremali", "sütlü", "graten",
			"beğendi",
		},
		Egg: []string{
			"yumurta", "omlet", "menemen", "mayonez",
		},
		Fish: []string{
			"balık", "balik", "somon", "ton", "levrek", "çipura", "cipura",
			"kalamar", "karides", "karıdes", "ahtapot", "hamsi", "palamut",
			"uskumru", "mezgit", "sardalya", "çinekop", "cinekop", "barbun",
			"barb", "kılıç", "kiliç", "kolyos", "orkinos", "lüfer", "lufer",
			"alabalık", "alabalik", "dil balığı", "sübye", "subye", "yengeç",
			"yengec", "paella", "deniz mahsülleri", "denizmahsülleri",
			"deniz ürünleri", "çupra", "çipura", "cipura", "istavrit", "istravit",
		},
	}
}
