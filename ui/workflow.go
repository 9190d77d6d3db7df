package ui

import (
	"context"
	"image"
	"sync"

	"fyne.io/fyne/v2/lang"
	"github.com/dixieflatline76/Collager/pkg/collage"
	"github.com/dixieflatline76/Collager/util"
	"github.com/dixieflatline76/Collager/util/log"
	"github.com/google/uuid"
)

// defaultSaveName is offered in the save dialog.
const defaultSaveName = "collage" + collage.DefaultExtension

// Workflow runs one collage build at a time: pick a folder, load, assemble,
// pick a destination, save.
type Workflow struct {
	ctx  *Context
	busy *util.SafeFlag

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewWorkflow creates a Workflow bound to ctx.
func NewWorkflow(ctx *Context) *Workflow {
	return &Workflow{ctx: ctx, busy: util.NewSafeFlag()}
}

// Busy reports whether a build is in progress.
func (w *Workflow) Busy() bool {
	return w.busy.Value()
}

// Start begins a build. It must be called on the UI goroutine.
func (w *Workflow) Start() {
	if !w.busy.TrySet() {
		w.ctx.Notifier.Notify(NoticeWarning, lang.L("notice.warning.title"), lang.L("notice.busy"))
		return
	}

	spec, err := w.readSpec()
	if err != nil {
		w.finish(err)
		return
	}

	w.ctx.Display.SetBusy(true)
	w.ctx.Picker.ChooseFolder(w.ctx.Config.GetLastFolder(), func(dir string, err error) {
		if err == nil && dir == "" {
			err = collage.ErrNoSourceSelected
		}
		if err != nil {
			w.finish(err)
			return
		}
		w.ctx.Config.SetLastFolder(dir)
		w.ctx.async(func() { w.build(dir, spec) })
	})
}

// Cancel stops the running build between steps. It is a no-op when idle.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Workflow) readSpec() (collage.Spec, error) {
	wText, hText := w.ctx.Display.SizeText()
	width, err := util.ParsePositiveInt(wText)
	if err != nil {
		return collage.Spec{}, collage.ErrInvalidDimensions
	}
	height, err := util.ParsePositiveInt(hText)
	if err != nil {
		return collage.Spec{}, collage.ErrInvalidDimensions
	}
	w.ctx.Config.SetCanvasWidth(width)
	w.ctx.Config.SetCanvasHeight(height)
	return collage.Spec{Width: width, Height: height}, nil
}

func (w *Workflow) build(dir string, spec collage.Spec) {
	ctx, cancel := context.WithCancel(context.Background())
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.cancel = nil
		w.mu.Unlock()
		cancel()
	}()

	id := uuid.NewString()
	cfg := w.ctx.Config
	log.Printf("Build %s: %s at %dx%d", id, dir, spec.Width, spec.Height)

	paths, err := collage.ListImages(dir)
	if err != nil {
		w.ctx.onMain(func() { w.finish(err) })
		return
	}

	w.ctx.onMain(func() {
		w.ctx.Display.SetStatus(lang.L("status.building"))
		w.ctx.Display.SetProgress(0)
	})
	opts := collage.LoadOptions{
		AutoOrient: cfg.GetAutoOrient(),
		OnDecoded: func(done, total int) {
			status := lang.L("status.loading", map[string]any{"Done": done, "Total": total})
			w.ctx.onMain(func() { w.ctx.Display.SetStatus(status) })
		},
	}
	fitter := collage.NewFitter(collage.ParseFitMode(cfg.GetFitMode()), collage.ParseFilter(cfg.GetResampleFilter()))
	sink := collage.ProgressFunc(func(percent float64) {
		w.ctx.onMain(func() { w.ctx.Display.SetProgress(percent) })
	})
	canvas, err := collage.NewAssembler(fitter).AssembleFiles(ctx, paths, spec.Width, spec.Height, opts, sink)
	if err != nil {
		w.ctx.onMain(func() { w.finish(err) })
		return
	}
	log.Printf("Build %s: assembled %d images", id, len(paths))

	w.ctx.onMain(func() {
		w.ctx.Picker.ChooseSavePath(defaultSaveName, func(path string, err error) {
			if err == nil && path == "" {
				err = collage.ErrSaveCancelled
			}
			if err != nil {
				w.finish(err)
				return
			}
			w.ctx.async(func() { w.save(canvas, path) })
		})
	})
}

func (w *Workflow) save(canvas image.Image, path string) {
	dest, _, err := collage.Save(canvas, path, collage.SaveOptions{JPEGQuality: w.ctx.Config.GetJPEGQuality()})
	w.ctx.onMain(func() {
		if err != nil {
			w.finish(err)
			return
		}
		w.ctx.Notifier.Notify(NoticeInfo, lang.L("notice.success.title"), lang.L("notice.success.body", map[string]any{"Path": dest}))
		w.ctx.Display.ShowResult(dest, canvas)
		w.finish(nil)
	})
}

// finish reports err, if any, and returns the window to idle. UI goroutine only.
func (w *Workflow) finish(err error) {
	if err != nil {
		log.Printf("Collage build ended: %v", err)
		kind, title, message := noticeFor(err)
		w.ctx.Notifier.Notify(kind, title, message)
	}
	w.ctx.Display.SetBusy(false)
	w.ctx.Display.SetStatus(lang.L("status.idle"))
	w.busy.Clear()
}
