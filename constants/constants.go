// Package constants holds the static string sets used to veto or protect
// identifier splits: common morphological prefixes and suffixes, and the
// small set of well-known compound terms that embed digits (utf8, i18n,
// md5, ...) together with the numeric suffixes that commonly follow a word
// without being a separate token (AES256, sha512, ...).
//
// All sets are compared case-insensitively; callers are expected to
// lowercase their lookup key before calling Contains.
package constants

import mapset "github.com/deckarep/golang-set"

// Set is the shared set type used across spiral for static string
// collections, matching the set library the identifier-splitting teacher
// repo already depended on.
type Set = mapset.Set

var (
	prefixes                Set
	suffixes                Set
	commonTermsWithNumbers  Set
	commonSuffixNumbers     Set
)

func init() {
	prefixes = buildSet(prefixList)
	suffixes = buildSet(suffixList)
	commonTermsWithNumbers = buildSet(commonTermsWithNumbersList)
	commonSuffixNumbers = buildSet(commonSuffixNumbersList)
}

func buildSet(items []string) Set {
	s := mapset.NewThreadUnsafeSet()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Prefixes returns the static set of common morphological prefixes used to
// veto an otherwise plausible split (e.g. "re" + "turn").
func Prefixes() Set { return prefixes }

// Suffixes returns the static set of common morphological suffixes used to
// veto an otherwise plausible split (e.g. "action" + "ing" candidate splits
// on the wrong side of "-tion").
func Suffixes() Set { return suffixes }

// CommonTermsWithNumbers returns the set of well-known compound terms that
// contain digits and must survive digit-splitting and camel-splitting
// intact (utf8, ipv4, md5, ...).
func CommonTermsWithNumbers() Set { return commonTermsWithNumbers }

// CommonSuffixNumbers returns the set of numeric suffixes that, appended to
// a word, are kept as part of that word rather than split off (base64,
// sha256, aes128, ...).
func CommonSuffixNumbers() Set { return commonSuffixNumbers }

// IsPrefix reports whether the lowercased token is a known prefix.
func IsPrefix(token string) bool {
	return prefixes.Contains(lower(token))
}

// IsSuffix reports whether the lowercased token is a known suffix.
func IsSuffix(token string) bool {
	return suffixes.Contains(lower(token))
}

// IsCommonTermWithNumbers reports whether the lowercased token is one of
// the known compound terms that embed digits.
func IsCommonTermWithNumbers(token string) bool {
	return commonTermsWithNumbers.Contains(lower(token))
}

// HasCommonSuffixNumber reports whether token ends with one of the known
// numeric suffixes and does not itself start with a digit.
func HasCommonSuffixNumber(token string) bool {
	if token == "" || isDigit(token[0]) {
		return false
	}
	it := commonSuffixNumbers.Iterator()
	for suffix := range it.C {
		s := suffix.(string)
		if len(token) > len(s) && hasSuffixFold(token, s) {
			return true
		}
	}
	return false
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return lower(s[len(s)-len(suffix):]) == suffix
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// commonTermsWithNumbersList enumerates well-known compound terms that
// contain digits (spec §6 "Constants", illustrative list).
var commonTermsWithNumbersList = []string{
	"utf8", "utf16", "utf32", "i18n", "l10n", "a11y", "ipv4", "ipv6",
	"mp3", "mp4", "md5", "sha1", "sha256", "sha512", "base64", "base32",
	"x86", "x64", "win32", "win64", "ipv6addr", "oauth2", "p2p", "3des",
	"rc4", "aes128", "aes256", "y2k", "atm2", "2fa",
}

// commonSuffixNumbersList enumerates numeric suffixes that are kept
// attached to the preceding word rather than split off (spec §6).
var commonSuffixNumbersList = []string{
	"8", "16", "32", "64", "128", "256", "512", "1024",
}

// prefixList is the static ~90-item prefix list from the Samurai paper's
// companion web page (Enslen, Hill, Pollock & Vijay-Shanker, 2009),
// reused verbatim from the teacher's splitters.Samurai default set.
var prefixList = []string{
	"afro", "ambi", "amphi", "ana", "anglo", "apo", "astro", "bi",
	"bio", "circum", "cis", "co", "col", "com", "con", "contra",
	"cor", "cryo", "crypto", "de", "demi", "di", "dif",
	"dis", "du", "duo", "eco", "electro", "em", "en", "epi",
	"euro", "ex", "franco", "geo", "hemi", "hetero", "homo",
	"hydro", "hypo", "ideo", "idio", "il", "im", "infra", "inter",
	"intra", "ir", "iso", "macr", "mal", "maxi", "mega", "megalo",
	"micro", "midi", "mini", "mis", "mon", "multi", "neo", "omni",
	"paleo", "para", "ped", "peri", "poly", "pre", "preter",
	"proto", "pyro", "re", "retro", "semi", "socio", "supra",
	"sur", "sy", "syl", "sym", "syn", "tele", "trans", "tri",
	"twi", "ultra", "un", "uni",
}

// suffixList is the static ~280-item suffix list from the same Samurai
// source, reused verbatim from the teacher's splitters.Samurai default set.
var suffixList = []string{
	"a", "ac", "acea", "aceae", "acean", "aceous", "ade", "aemia",
	"agogue", "aholic", "al", "ales", "algia", "amine", "ana",
	"anae", "ance", "ancy", "androus", "andry", "ane", "ar",
	"archy", "ard", "aria", "arian", "arium", "ary", "ase",
	"athon", "ation", "ative", "ator", "atory", "biont", "biosis",
	"cade", "caine", "carp", "carpic", "carpous", "cele", "cene",
	"centric", "cephalic", "cephalous", "cephaly", "chory",
	"chrome", "cide", "clast", "clinal", "cline", "coccus",
	"coel", "coele", "colous", "cracy", "crat", "cratic",
	"cratical", "cy", "cyte", "derm", "derma", "dermatous", "dom",
	"drome", "dromous", "eae", "ectomy", "ed", "ee", "eer", "ein",
	"eme", "emia", "en", "ence", "enchyma", "ency", "ene", "ent",
	"eous", "er", "ergic", "ergy", "es", "escence", "escent",
	"ese", "esque", "ess", "est", "et", "eth", "etic", "ette",
	"ey", "facient", "fer", "ferous", "fic", "fication", "fid",
	"florous", "foliate", "foliolate", "fuge", "ful", "fy",
	"gamous", "gamy", "gen", "genesis", "genic", "genous", "geny",
	"gnathous", "gon", "gony", "grapher", "graphy", "gyne",
	"gynous", "gyny", "ia", "ial", "ian", "iana", "iasis",
	"iatric", "iatrics", "iatry", "ibility", "ible", "ic",
	"icide", "ician", "ics", "idae", "ide", "ie",
	"ify", "ile", "ina", "inae", "ine", "ineae", "ing", "ini",
	"ious", "isation", "ise", "ish", "ism", "ist", "istic",
	"istical", "istically", "ite", "itious", "itis", "ity", "ium",
	"ive", "ization", "ize", "kinesis", "kins", "latry", "lepry",
	"ling", "lite", "lith", "lithic", "logue", "logist", "logy",
	"ly", "lyse", "lysis", "lyte", "lytic", "lyze", "mancy",
	"mania", "meister", "ment", "merous", "metry", "mo", "morph",
	"morphic", "morphism", "morphous", "mycete", "mycetes",
	"mycetidae", "mycin", "mycota", "mycotina", "ness", "nik",
	"nomy", "odon", "odont", "odontia", "oholic", "oic", "oid",
	"oidea", "oideae", "ol", "ole", "oma", "ome", "ont", "onym",
	"onymy", "opia", "opsida", "opsis", "opsy", "orama", "ory",
	"ose", "osis", "otic", "otomy", "ous", "para", "parous",
	"pathy", "ped", "pede", "penia", "phage", "phagia", "phagous",
	"phagy", "phane", "phasia", "phil", "phile", "philia",
	"philiac", "philic", "philous", "phobe", "phobia", "phobic",
	"phony", "phore", "phoresis", "phorous", "phrenia", "phyll",
	"phyllous", "phyceae", "phycidae", "phyta", "phyte",
	"phytina", "plasia", "plasm", "plast", "plasty", "plegia",
	"plex", "ploid", "pode", "podous", "poieses", "poietic",
	"pter", "rrhagia", "rrhea", "ric", "ry", "s", "scopy",
	"sepalous", "sperm", "sporous", "st", "stasis", "stat",
	"ster", "stome", "stomy", "taxy", "th", "therm", "thermal",
	"thermic", "thermy", "thon", "thymia", "tion", "tome", "tomy",
	"tonia", "trichous", "trix", "tron", "trophic", "tropism",
	"tropous", "tropy", "tude", "ty", "ular", "ule", "ure",
	"urgy", "uria", "uronic", "urous", "valent", "virile",
	"vorous", "xor", "y", "yl", "yne", "zoic", "zoon", "zygous",
	"zyme",
}
