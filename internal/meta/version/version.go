package version

// Version of the transpiler binary, overridden at build time with -ldflags "-X ...".
var Version = "0.1.0-dev"
