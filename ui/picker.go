package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/dixieflatline76/Collager/util/log"
)

var saveExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff"}

// dialogPicker implements Picker with the fyne file dialogs.
type dialogPicker struct {
	window fyne.Window
}

func (p *dialogPicker) ChooseFolder(start string, done func(dir string, err error)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			done("", err)
			return
		}
		done(uri.Path(), nil)
	}, p.window)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			fd.SetLocation(lister)
		} else {
			log.Debugf("Last folder %s is not usable: %v", start, err)
		}
	}
	fd.Resize(dialogSize(p.window))
	fd.Show()
}

func (p *dialogPicker) ChooseSavePath(defaultName string, done func(path string, err error)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			done("", err)
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			log.Printf("Failed to close save target %s: %v", path, err)
		}
		// The dialog creates the file it returns. Without an extension the
		// collage goes to path+DefaultExtension, so drop the empty file.
		if filepath.Ext(path) == "" {
			os.Remove(path)
		}
		done(path, nil)
	}, p.window)

	fd.SetFileName(defaultName)
	fd.SetFilter(storage.NewExtensionFileFilter(saveExtensions))
	fd.Resize(dialogSize(p.window))
	fd.Show()
}

func dialogSize(w fyne.Window) fyne.Size {
	size := w.Canvas().Size()
	return fyne.NewSize(fyne.Max(size.Width, 640), fyne.Max(size.Height, 480))
}
