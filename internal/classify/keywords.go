package classify

// The heuristic vocabularies live here as named sets so they can be
// extended or swapped without touching the classifier control flow.

// PersonNameExclusions lists substrings that disqualify a cell from being
// a person-name header: brand names, effect categories and ledger-summary
// wording that shows up in the same column.
var PersonNameExclusions = []string{
	"total", "fmv", "$20 less", "pedal", "label", "needs", "for lot",
	"payout", "boss ", "mxr ", "tc electronic", "digitech ", "ibanez ",
	"reverb", "delay", "overdrive", "distortion", "fuzz", "chorus",
	"flanger", "compressor", "looper", "wah", "boost", "tremolo",
	"preamp", "squeezer", "gold", "ridge", "ray", "mjolnir",
	"vemuram", "neunaber", "illumine", "xotic", "kernom", "mythos",
	"eqd", "wd orange", "jan ray", "acapulco", "bb preamp",
}

// BrandModifiers are size/quality adjectives and model-revision tokens that
// appear in gear names but almost never in a person's name.
var BrandModifiers = []string{
	"micro", "mini", "super", "ultra", "pro", "deluxe", "king", "master",
	"special", "custom", "classic", "vintage", "mk", "v1", "v2", "v3", "v4",
}

// PedalKeywords positively identify a cell as gear: effect categories and
// the brands that dominate this ledger.
var PedalKeywords = []string{
	"pedal", "reverb", "delay", "overdrive", "distortion", "fuzz",
	"chorus", "flanger", "wah", "boost", "compressor", "looper",
	"boss", "mxr", "tc electronic", "digitech", "ibanez",
	"dunlop", "walrus", "eqd", "keeley", "jhs", "wampler",
	"line 6", "behringer", "mooer", "pigtronix", "earthquaker",
}

// LedgerNoise marks summary and bookkeeping rows that must never be read
// as gear names.
var LedgerNoise = []string{
	"total", "fmv", "$20 less", "label", "needs", "for lot", "payout",
}

// CommonFirstNames is the positive signal for the person heuristic: a
// candidate only confirms as a person when its first word is one of these.
var CommonFirstNames = []string{
	"michael", "david", "james", "john", "robert", "william", "richard",
	"thomas", "christopher", "daniel", "matthew", "joseph", "anthony",
	"donald", "mark", "paul", "steven", "andrew", "kenneth", "joshua",
	"kevin", "brian", "george", "edward", "ronald", "timothy", "jason",
	"jeffrey", "ryan", "jacob", "gary", "nicholas", "eric", "jonathan",
	"stephen", "larry", "justin", "scott", "brandon", "frank", "benjamin",
	"gregory", "raymond", "samuel", "patrick", "alexander", "jack", "dennis",
	"jerry", "tyler", "aaron", "jose", "adam", "henry", "nathan", "douglas",
	"zachary", "peter", "kyle", "walter", "ethan", "jeremy", "harold",
	"keith", "christian", "roger", "noah", "gerald", "carl", "terry", "sean",
	"austin", "arthur", "lawrence", "jesse", "dylan", "bryan", "joe", "jordan",
	"billy", "bruce", "albert", "willie", "gabriel", "logan", "alan", "juan",
	"wayne", "roy", "ralph", "randy", "eugene", "vincent", "russell", "elijah",
	"louis", "bobby", "philip", "johnny", "bradley", "neil", "andre", "jean",
	"rob", "steve", "oliver", "jimmy", "martin", "dave", "matt", "chris",
	"mike", "bill", "bob", "tom", "dan", "jim", "tony", "pablo", "joey",
	"stefan", "salvatore", "jimi", "damon", "jake", "vince", "brett", "jamie",
	"doug", "tracy", "adan", "mitchell", "daryl", "guy", "jean-claude",
	"gandhi",
}
