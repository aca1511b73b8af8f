// Package fynedash renders a live Recorder feed in a Fyne window: a
// fixed-rate ticker drives a poll-and-refresh cycle against
// debug.Recorder.Snapshot(). There is no fixed-timestep accumulator to
// reconcile against the ticker because a Recorder snapshot is idempotent
// to re-read — unlike a simulation step, reading it twice in a row does
// no harm, so the refresh loop can simply poll at its own pace. It lives
// outside internal/debug so the core recorder contract carries no
// dependency on Fyne at all.
package fynedash

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"robocore-dx/internal/debug"
)

const refreshHz = 20

// Dashboard is a small Fyne window listing the most recent entries held
// by a debug.Recorder, refreshed on a fixed ticker independent of the
// host tick loop's own rate.
type Dashboard struct {
	recorder *debug.Recorder
	app      fyne.App
	window   fyne.Window
	list     *widget.List
	entries  []debug.Entry
	running  bool
}

// New builds a Dashboard window bound to recorder. Run must be called
// to actually display it; New performs no Fyne driver work beyond
// constructing widgets.
func New(recorder *debug.Recorder, title string) *Dashboard {
	a := app.New()
	w := a.NewWindow(title)

	d := &Dashboard{recorder: recorder, app: a, window: w}

	d.list = widget.NewList(
		func() int { return len(d.entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(d.entries[i].Format())
		},
	)

	clearButton := widget.NewButton("Clear", func() {
		d.recorder.Clear()
	})

	w.SetContent(container.NewBorder(nil, clearButton, nil, nil, d.list))
	w.Resize(fyne.NewSize(640, 480))
	return d
}

// Run shows the window and blocks until it is closed, refreshing the
// displayed entries at refreshHz in a background goroutine that runs
// independently of ShowAndRun's blocking call.
func (d *Dashboard) Run() {
	d.running = true
	go d.refreshLoop()
	d.window.ShowAndRun()
	d.running = false
}

func (d *Dashboard) refreshLoop() {
	ticker := time.NewTicker(time.Second / refreshHz)
	defer ticker.Stop()
	for d.running {
		<-ticker.C
		d.entries = d.recorder.Snapshot()
		reverseEntries(d.entries)
		d.list.Refresh()
	}
}

// reverseEntries reverses Snapshot's oldest-first order in place, so the
// dashboard lists the newest entry at the top.
func reverseEntries(entries []debug.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

// Title formats a window title from base followed by each of the given
// component names in brackets, for callers that want a quick
// at-a-glance label.
func Title(base string, components ...debug.Component) string {
	title := base
	for _, c := range components {
		title += fmt.Sprintf(" [%s]", c)
	}
	return title
}
