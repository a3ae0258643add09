package config

import "strings"

// AppVersion is the version of the application, set at build time with
// -ldflags "-X github.com/dixieflatline76/PixelPerfect/config.AppVersion=...".
var AppVersion = "0.1.0"

// AppName is the name of the application.
const AppName = "PixelPerfect"

// AppID is the Fyne application id; it also namespaces the preferences.
const AppID = "com.dixieflatline76.pixelperfect"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
