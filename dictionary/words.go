package dictionary

// DefaultWords is a small seed set of common English words used to build
// the dictionary of the default Ronin splitter returned by
// splitters.Default(). A
// real deployment loads a full word list with LoadWords (spec §6); this
// list only needs to cover the vocabulary exercised by the splitter's own
// tests and everyday identifiers.
var DefaultWords = []string{
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"and", "or", "not", "but", "if", "then", "else", "for", "while", "do",
	"get", "set", "put", "add", "remove", "delete", "update", "create",
	"read", "write", "open", "close", "start", "stop", "run", "call",
	"value", "values", "key", "keys", "name", "names", "type", "types",
	"list", "lists", "array", "arrays", "map", "maps", "set", "sets",
	"string", "strings", "number", "numbers", "integer", "integers",
	"float", "floats", "double", "doubles", "decimal", "decimals",
	"boolean", "booleans", "char", "chars", "byte", "bytes", "bit", "bits",
	"file", "files", "path", "paths", "directory", "directories",
	"stream", "streams", "buffer", "buffers", "socket", "sockets",
	"client", "clients", "server", "servers", "request", "requests",
	"response", "responses", "error", "errors", "status", "state",
	"states", "config", "configs", "configuration", "option", "options",
	"param", "params", "parameter", "parameters", "result", "results",
	"total", "sum", "average", "count", "counts", "min", "max", "size",
	"length", "width", "height", "index", "indexes", "indices",
	"first", "last", "next", "prev", "previous", "current",
	"node", "nodes", "tree", "trees", "graph", "graphs", "cache", "caches",
	"user", "users", "admin", "token", "tokens", "session", "sessions",
	"auth", "login", "logout", "password", "passwords", "email", "emails",
	"phone", "address", "addresses", "city", "cities", "country",
	"countries", "distance", "speed", "time", "times", "date", "dates",
	"hour", "hours", "minute", "minutes", "second", "seconds", "week",
	"weeks", "month", "months", "year", "years", "good", "better", "best",
	"bad", "worse", "worst", "new", "old", "big", "small", "large",
	"little", "some", "any", "all", "none", "many", "few", "more", "less",
	"true", "false", "null", "void", "default", "custom", "public",
	"private", "protected", "static", "final", "const", "var", "let",
	"function", "functions", "method", "methods", "class", "classes",
	"object", "objects", "instance", "instances", "interface",
	"interfaces", "module", "modules", "package", "packages", "import",
	"export", "return", "returns", "yield", "break", "continue", "case",
	"switch", "try", "catch", "finally", "throw", "throws", "exception",
	"exceptions", "thread", "threads", "process", "processes", "queue",
	"queues", "stack", "stacks", "heap", "pointer", "pointers",
	"reference", "references", "data", "item", "items", "element",
	"elements", "field", "fields", "record", "records", "row", "rows",
	"column", "columns", "table", "tables", "database", "databases",
	"query", "queries", "schema", "schemas", "matrix", "vector",
	"vectors", "image", "images", "audio", "video", "color", "colors",
	"format", "formats", "encode", "decode", "parse", "parser", "parsers",
	"lexer", "lexers", "token", "version", "build", "builder", "builders",
	"factory", "factories", "handler", "handlers", "listener",
	"listeners", "event", "events", "signal", "signals", "channel",
	"channels", "worker", "workers", "pool", "pools", "limit", "limits",
	"offset", "offsets", "range", "ranges", "sort", "search", "filter",
	"filters", "match", "matches", "replace", "split", "join", "trim",
	"upper", "lower", "validate", "verify", "check", "test", "tests",
	"mock", "mocks", "stub", "stubs", "fixture", "fixtures",
}

// SpecialComputingTerms is the seed set of domain-specific terms described
// in spec §2 item 2: identifier fragments a general English dictionary
// would not reliably contain, such as programming jargon and common
// abbreviations.
var SpecialComputingTerms = []string{
	"lexer", "parser", "tokenizer", "iterator", "enumerator", "visitor",
	"compiler", "interpreter", "linker", "loader", "runtime", "goroutine",
	"mutex", "semaphore", "struct", "enum", "bool", "int", "uint",
	"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32",
	"uint64", "stdin", "stdout", "stderr", "regex", "regexp", "json",
	"yaml", "xml", "html", "css", "http", "https", "tcp", "udp", "ip",
	"url", "uri", "uuid", "guid", "jwt", "oauth", "auth", "api", "sdk",
	"cli", "gui", "ui", "ux", "os", "cpu", "gpu", "ram", "rom", "io",
	"utf8", "utf16", "ascii", "base64", "md5", "sha1", "sha256",
	"checksum", "hashmap", "treemap", "linkedlist", "arraylist",
	"callback", "closure", "lambda", "middleware", "router", "dispatcher",
	"serializer", "deserializer", "marshaller", "unmarshaller", "codec",
	"proxy", "gateway", "broker", "producer", "consumer", "publisher",
	"subscriber", "repository", "dao", "orm", "sql", "nosql", "db",
	"cdn", "dns", "ssl", "tls", "cert", "asc", "desc", "idx", "ptr",
	"ref", "impl", "init", "ctx", "cfg", "env", "arg", "args", "kwargs",
	"params", "config", "namespace", "scope", "metadata", "payload",
	"header", "headers", "footer", "body", "endpoint", "endpoints",
}
