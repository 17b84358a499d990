package utils

// Version is the current version of the moera-tools package. The CLI tools
// show it with the -V/--version flag.
var Version = "0.2.0"
