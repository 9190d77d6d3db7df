package ui

import (
	"image"

	"github.com/dixieflatline76/Collager/config"
)

// Picker asks the user for the source folder and the destination file.
// Both callbacks receive an empty string when the user dismisses the dialog.
type Picker interface {
	ChooseFolder(start string, done func(dir string, err error))
	ChooseSavePath(defaultName string, done func(path string, err error))
}

// NoticeKind selects how a notice is presented.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// Notifier shows modal notices.
type Notifier interface {
	Notify(kind NoticeKind, title, message string)
}

// Display is the part of the main window the workflow drives.
type Display interface {
	// SizeText returns the raw contents of the width and height entries.
	SizeText() (width, height string)
	SetBusy(busy bool)
	SetStatus(text string)
	SetProgress(percent float64)
	ShowResult(path string, img image.Image)
}

// Context carries everything one collage build needs from the shell.
type Context struct {
	Config   *config.AppConfig
	Picker   Picker
	Notifier Notifier
	Display  Display

	// RunOnMain schedules f on the UI goroutine.
	RunOnMain func(f func())
	// RunAsync runs f off the UI goroutine.
	RunAsync func(f func())
}

func (c *Context) onMain(f func()) {
	if c.RunOnMain == nil {
		f()
		return
	}
	c.RunOnMain(f)
}

func (c *Context) async(f func()) {
	if c.RunAsync == nil {
		go f()
		return
	}
	c.RunAsync(f)
}
