package harfbuzz

// debugMode gates the verbose shaping trace the ported lookup-apply
// code still carries from its origin (every `if debugMode { fmt.Print... }`
// call site). It is a plain package variable rather than a build tag so
// a caller embedding this module can flip it at runtime for one-off
// debugging, the same way HB_DEBUG works as an environment toggle
// rather than a compile-time one.
var debugMode = false
