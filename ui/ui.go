package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Collager/asset"
	"github.com/dixieflatline76/Collager/config"
	"github.com/dixieflatline76/Collager/pkg/collage"
	"github.com/dixieflatline76/Collager/util"
	"github.com/dixieflatline76/Collager/util/log"
)

// CollagerApp is the main window of the application.
type CollagerApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	cfg      *config.AppConfig
	workflow *Workflow

	widthEntry   *widget.Entry
	heightEntry  *widget.Entry
	fitSelect    *widget.Select
	startButton  *widget.Button
	cancelButton *widget.Button
	progress     *widget.ProgressBar
	status       *widget.Label
}

// NewCollagerApp builds the main window of a.
func NewCollagerApp(a fyne.App) *CollagerApp {
	ca := &CollagerApp{
		app:      a,
		assetMgr: asset.NewManager(),
		cfg:      config.NewAppConfig(a.Preferences()),
	}
	if err := ca.assetMgr.LoadTranslations(); err != nil {
		log.Printf("Failed to load translations: %v", err)
	}
	if icon, err := ca.assetMgr.GetIcon("collager.svg"); err == nil {
		a.SetIcon(icon)
	}

	ca.window = a.NewWindow(lang.L("app.title"))
	ca.workflow = NewWorkflow(&Context{
		Config:    ca.cfg,
		Picker:    &dialogPicker{window: ca.window},
		Notifier:  &dialogNotifier{window: ca.window},
		Display:   ca,
		RunOnMain: fyne.Do,
		RunAsync:  func(f func()) { go f() },
	})

	ca.window.SetContent(ca.createContent())
	ca.window.SetMaster()
	ca.window.Resize(fyne.NewSize(420, 0))
	return ca
}

// Run shows the window and blocks until the application quits.
func (ca *CollagerApp) Run() {
	ca.window.CenterOnScreen()
	ca.window.ShowAndRun()
}

func (ca *CollagerApp) createContent() fyne.CanvasObject {
	ca.widthEntry = newSizeEntry(ca.cfg.GetCanvasWidth())
	ca.heightEntry = newSizeEntry(ca.cfg.GetCanvasHeight())

	fitLabels := make([]string, len(collage.FitModes))
	for i, mode := range collage.FitModes {
		fitLabels[i] = lang.L("fit." + string(mode))
	}
	ca.fitSelect = widget.NewSelect(fitLabels, func(selected string) {
		for i, label := range fitLabels {
			if label == selected {
				ca.cfg.SetFitMode(string(collage.FitModes[i]))
			}
		}
	})
	current := collage.ParseFitMode(ca.cfg.GetFitMode())
	for i, mode := range collage.FitModes {
		if mode == current {
			ca.fitSelect.SetSelectedIndex(i)
		}
	}

	ca.startButton = widget.NewButtonWithIcon(lang.L("button.select"), theme.FolderOpenIcon(), ca.workflow.Start)
	ca.startButton.Importance = widget.HighImportance
	ca.cancelButton = widget.NewButtonWithIcon(lang.L("button.cancel"), theme.CancelIcon(), ca.workflow.Cancel)
	ca.cancelButton.Disable()
	settingsButton := widget.NewButtonWithIcon(lang.L("button.settings"), theme.SettingsIcon(), ca.showSettings)
	aboutButton := widget.NewButtonWithIcon(lang.L("button.about"), theme.InfoIcon(), ca.showAbout)

	ca.progress = widget.NewProgressBar()
	ca.progress.Max = 100
	ca.status = widget.NewLabel(lang.L("status.idle"))
	ca.status.Importance = widget.LowImportance
	ca.status.TextStyle = fyne.TextStyle{Italic: true}

	form := container.NewVBox(
		newFormRow(widget.NewLabel(lang.L("label.width")), ca.widthEntry),
		newFormRow(widget.NewLabel(lang.L("label.height")), ca.heightEntry),
		newFormRow(widget.NewLabel(lang.L("label.fit")), ca.fitSelect),
	)
	buttons := container.NewGridWithColumns(3, ca.cancelButton, settingsButton, aboutButton)

	return container.NewPadded(container.NewVBox(
		form,
		ca.startButton,
		ca.progress,
		ca.status,
		buttons,
	))
}

func newSizeEntry(value int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(value))
	entry.Validator = func(text string) error {
		_, err := util.ParsePositiveInt(text)
		return err
	}
	return entry
}

func (ca *CollagerApp) showAbout() {
	text, err := ca.assetMgr.GetText("about.txt")
	if err != nil {
		text = config.AppName
	}
	body := widget.NewLabel(text + "\n\n" + config.AppName + " " + config.AppVersion)
	body.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(lang.L("button.about"), "OK", body, ca.window)
	d.Resize(fyne.NewSize(400, 0))
	d.Show()
}

// SizeText returns the raw width and height entry text.
func (ca *CollagerApp) SizeText() (string, string) {
	return ca.widthEntry.Text, ca.heightEntry.Text
}

// SetBusy switches the controls between the idle and building states.
func (ca *CollagerApp) SetBusy(busy bool) {
	if busy {
		ca.startButton.Disable()
		ca.widthEntry.Disable()
		ca.heightEntry.Disable()
		ca.fitSelect.Disable()
		ca.cancelButton.Enable()
		ca.progress.SetValue(0)
		return
	}
	ca.startButton.Enable()
	ca.widthEntry.Enable()
	ca.heightEntry.Enable()
	ca.fitSelect.Enable()
	ca.cancelButton.Disable()
}

// SetStatus replaces the status line.
func (ca *CollagerApp) SetStatus(text string) {
	ca.status.SetText(text)
}

// SetProgress moves the progress bar; percent is in [0,100].
func (ca *CollagerApp) SetProgress(percent float64) {
	ca.progress.SetValue(percent)
}
