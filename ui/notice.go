package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Collager/pkg/collage"
)

// noticeFor maps a build error to the notice the user sees.
func noticeFor(err error) (NoticeKind, string, string) {
	switch {
	case errors.Is(err, collage.ErrNoSourceSelected):
		return NoticeWarning, lang.L("notice.warning.title"), lang.L("notice.no_folder")
	case errors.Is(err, collage.ErrSaveCancelled):
		return NoticeWarning, lang.L("notice.warning.title"), lang.L("notice.save_cancelled")
	case errors.Is(err, context.Canceled):
		return NoticeInfo, lang.L("notice.warning.title"), lang.L("notice.build_cancelled")
	case errors.Is(err, collage.ErrEmptyImageSet):
		return NoticeError, lang.L("notice.error.title"), lang.L("notice.no_images")
	case errors.Is(err, collage.ErrInvalidDimensions):
		return NoticeError, lang.L("notice.error.title"), lang.L("notice.invalid_size")
	default:
		return NoticeError, lang.L("notice.error.title"), err.Error()
	}
}

// dialogNotifier shows notices as fyne dialogs over a window.
type dialogNotifier struct {
	window fyne.Window
}

func (n *dialogNotifier) Notify(kind NoticeKind, title, message string) {
	switch kind {
	case NoticeError:
		dialog.NewError(errors.New(message), n.window).Show()
	case NoticeWarning:
		dialog.NewCustom(title, "OK", warningContent(message), n.window).Show()
	default:
		dialog.ShowInformation(title, message, n.window)
	}
}

// warningContent lays out message next to the theme warning icon.
func warningContent(message string) *fyne.Container {
	body := widget.NewLabel(message)
	body.Wrapping = fyne.TextWrapWord
	return container.NewBorder(nil, nil, widget.NewIcon(theme.WarningIcon()), nil, body)
}
