// Package model defines domain data structures shared by the command-line
// tools: download and transcode tasks, playlist entities, and status enums.
// Every entity is transient and lives for a single command invocation.
package model
