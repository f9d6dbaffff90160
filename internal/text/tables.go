package text

// The default tables mix English with Nepali campus vocabulary; the
// service started life on a university campus and reports routinely
// code-switch ("rato purse", "chasma bhetiyo").

// DefaultStopwords returns the default stopword set: function words,
// pronouns, and domain-noise words that appear in nearly every report
// ("lost", "found", "near", "contact").
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has",
		"he", "in", "is", "it", "its", "of", "on", "that", "the", "to", "was",
		"were", "will", "with", "i", "my", "me", "you", "your", "yours", "we",
		"our", "ours", "they", "them", "their", "this", "those", "near",
		"during", "premises", "please", "across", "about", "know", "contact",
		"area", "colored", "lost", "found",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DefaultSynonyms returns the default synonym table. It is many-to-many
// and deliberately asymmetric in places ("white" expands to "seto" but
// not the reverse); lookups are case-sensitive post-fold.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"phone":     {"cellphone", "mobile", "iphone"},
		"cellphone": {"phone", "mobile", "iphone"},
		"mobile":    {"phone", "cellphone", "iphone"},
		"iphone":    {"phone", "cellphone", "mobile"},

		"wallet": {"purse"},
		"purse":  {"wallet"},

		"keys":     {"keychain"},
		"keychain": {"keys"},

		"glasses":    {"spectacles", "chasma"},
		"spectacles": {"glasses", "chasma"},
		"chasma":     {"glasses", "spectacles"},

		"bag":      {"backpack"},
		"backpack": {"bag"},

		"watch": {"ghadi"},
		"ghadi": {"watch"},

		"earrings": {"jewelry"},
		"jewelry":  {"earrings"},

		"book":     {"textbook"},
		"textbook": {"book"},

		"card": {"id"},
		"id":   {"card"},

		"tablet": {"ipad"},
		"ipad":   {"tablet"},

		"headphones": {"earphones", "earbuds"},
		"earphones":  {"headphones", "earbuds"},
		"earbuds":    {"headphones", "earphones"},

		"jacket": {"coat"},
		"coat":   {"jacket"},

		"helmet":  {"helmets", "hemlet", "hemlets"},
		"helmets": {"helmet", "hemlet", "hemlets"},
		"hemlet":  {"helmet", "helmets", "hemlets"},
		"hemlets": {"helmet", "helmets", "hemlet"},

		"umbrella": {"chata"},
		"chata":    {"umbrella"},

		"cap":  {"hat", "topi"},
		"hat":  {"cap", "topi"},
		"topi": {"hat", "cap"},

		"scarf":    {"galbandi"},
		"galbandi": {"scarf"},

		"scratch":   {"scratches", "scratched"},
		"scratches": {"scratch", "scratched"},
		"scratched": {"scratches", "scratch"},

		"cafe":      {"canteen", "cafeteria"},
		"canteen":   {"cafe", "cafeteria"},
		"cafeteria": {"cafe", "canteen"},

		"class":     {"classroom"},
		"classroom": {"class"},

		"blue": {"nilo"},
		"nilo": {"blue"},

		"red":   {"rato", "raato"},
		"rato":  {"red", "raato"},
		"raato": {"red", "rato"},

		"black": {"kalo", "kaalo"},
		"kalo":  {"black", "kaalo"},
		"kaalo": {"black", "kalo"},

		"white": {"seto"},

		"green":  {"hariyo"},
		"hariyo": {"green"},

		"yellow": {"pahelo"},
		"pahelo": {"yellow"},
	}
}
