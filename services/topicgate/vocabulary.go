package topicgate

// Vocabulary holds the keyword sets the gate matches against. It is
// static configuration data, injectable for tests and for retargeting
// the assistant to another domain.
type Vocabulary struct {
	// Ambiguous terms belong to many domains and only count as
	// on-topic when an ocean-context term is also present.
	Ambiguous []string
	// OceanContext terms anchor a question to the marine domain.
	OceanContext []string
	// Extended is the flat domain vocabulary: currents, organisms,
	// instruments, phenomena.
	Extended []string
}

// Greetings returns the fixed whole-word greeting list.
func Greetings() []string {
	return []string{"hi", "hii", "hello", "hey", "good morning", "good evening", "good afternoon"}
}

// DefaultVocabulary returns the oceanography keyword sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Ambiguous: []string{
			"biology", "geology", "chemistry", "physics", "animals", "plants", "environment",
		},
		OceanContext: []string{
			"ocean", "sea", "marine", "maritime", "aquatic", "coastal", "nautical",
			"water", "deep sea", "hydrothermal", "bay", "gulf",
		},
		Extended: []string{
			"salinity", "temperature", "tide", "wave", "current", "shore", "beach",
			"trench", "abyss", "oceanography", "bathymetry", "sea level", "strait",
			"pressure", "nitrogen", "nutrients", "sediment", "ph", "nitrate", "phosphate",
			"oxygen", "chlorophyll", "dissolved gas", "carbon dioxide", "co2",
			"coral", "reef", "fish", "whale", "dolphin", "shark", "plankton",
			"algae", "kelp", "bioluminescence", "phytoplankton", "zooplankton",
			"crustacean", "mollusk", "marine life", "ship", "boat", "submarine",
			"argo float", "buoy", "tsunami", "seafood", "fishing", "overfishing",
			"pollution", "plastic", "acidification", "atlantic", "pacific", "indian",
			"arctic", "antarctic", "mediterranean", "seamount", "guyot", "continental shelf",
			"mid-ocean ridge", "atoll", "lagoon", "estuary", "fjord", "delta",
			"thermohaline circulation", "upwelling", "downwelling", "gyre", "el niño",
			"la niña", "coriolis effect", "sonar", "hydrography", "acoustics",
			"ecosystem", "food web", "biodiversity", "species", "cetacean", "pinniped",
			"seabird", "mangrove", "seagrass", "echinoderm", "cnidarian",
			"rov", "auv", "aquaculture", "desalination", "offshore", "port", "harbor",
			"dredging", "anoxia", "hypoxia", "dead zone", "eutrophication", "oil spill",
			"microplastics", "carbon cycle", "carbon sink", "ocean tides",
		},
	}
}
