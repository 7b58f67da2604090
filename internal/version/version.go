/*
Package version holds version information.
*/
package version

// Version is the current version of the tool.
const Version = "0.1.0"
