package config

import "strings"

// AppVersion is the version of the application, set with -ldflags at build time.
var AppVersion = "0.0.0-dev"

// AppName is the name of the application.
const AppName = "Collager"

// AppID is the unique fyne application ID, also used to scope preferences.
const AppID = "com.dixieflatline76.collager"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
