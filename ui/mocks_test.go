package ui

import (
	"image"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(kind NoticeKind, title, message string) {
	m.Called(kind, title, message)
}

// fakePicker answers the dialogs with fixed results.
type fakePicker struct {
	folder     string
	folderErr  error
	savePath   string
	saveErr    error
	saveCalled bool
}

func (p *fakePicker) ChooseFolder(start string, done func(string, error)) {
	done(p.folder, p.folderErr)
}

func (p *fakePicker) ChooseSavePath(defaultName string, done func(string, error)) {
	p.saveCalled = true
	done(p.savePath, p.saveErr)
}

// fakeDisplay records what the workflow shows.
type fakeDisplay struct {
	mu         sync.Mutex
	width      string
	height     string
	busy       []bool
	statuses   []string
	progress   []float64
	resultPath string
	result     image.Image
	onProgress func(percent float64)
}

func (d *fakeDisplay) SizeText() (string, string) {
	return d.width, d.height
}

func (d *fakeDisplay) SetBusy(busy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.busy = append(d.busy, busy)
}

func (d *fakeDisplay) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = append(d.statuses, text)
}

func (d *fakeDisplay) SetProgress(percent float64) {
	d.mu.Lock()
	d.progress = append(d.progress, percent)
	hook := d.onProgress
	d.mu.Unlock()
	if hook != nil {
		hook(percent)
	}
}

func (d *fakeDisplay) ShowResult(path string, img image.Image) {
	d.resultPath = path
	d.result = img
}
