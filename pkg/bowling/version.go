package bowling

// Version is the current version of the bowling module. The tenpin command
// reports it when the binary carries no module version.
const Version = "1.0.0"
