package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/report-summarizer/internal/app"
)

// NotificationPanel is the stack of dismissible messages at the top of the window
type NotificationPanel struct {
	box   *fyne.Container
	items map[string]*notificationItem
}

type notificationItem struct {
	object     fyne.CanvasObject
	background *canvas.Rectangle
	label      *widget.Label
}

// NewNotificationPanel creates an empty panel
func NewNotificationPanel() *NotificationPanel {
	return &NotificationPanel{
		box:   container.NewVBox(),
		items: make(map[string]*notificationItem),
	}
}

// Container returns the panel's canvas object
func (p *NotificationPanel) Container() fyne.CanvasObject {
	return p.box
}

// Len returns the number of messages shown
func (p *NotificationPanel) Len() int {
	return len(p.items)
}

// AddNotification appends a message
func (p *NotificationPanel) AddNotification(n app.Notification) {
	bg := canvas.NewRectangle(SeverityColor(n.Severity))
	bg.CornerRadius = 4

	label := widget.NewLabel(n.Message)
	label.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(IconClose, func() {
		if n.Dismiss != nil {
			n.Dismiss()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, label)
	item := &notificationItem{
		object:     container.NewStack(bg, container.NewPadded(content)),
		background: bg,
		label:      label,
	}

	p.items[n.ID] = item
	p.box.Add(item.object)
}

// FadeNotification starts the fade-out of a message
func (p *NotificationPanel) FadeNotification(id string) {
	item, ok := p.items[id]
	if !ok {
		return
	}
	from := toNRGBA(item.background.FillColor)
	to := from
	to.A = 0
	canvas.NewColorRGBAAnimation(from, to, app.NotificationFade, func(c color.Color) {
		item.background.FillColor = c
		item.background.Refresh()
	}).Start()
	item.label.Importance = widget.LowImportance
	item.label.Refresh()
}

// RemoveNotification drops a message
func (p *NotificationPanel) RemoveNotification(id string) {
	item, ok := p.items[id]
	if !ok {
		return
	}
	delete(p.items, id)
	p.box.Remove(item.object)
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
