// Package platform holds filesystem helpers and the playlist resolver used
// by the download commands.
package platform
