package cv

import (
	"errors"

	"gocv.io/x/gocv"
)

// Viewer 图像展示窗口
type Viewer interface {
	// Show 在名为 title 的窗口中展示图像
	Show(title string, img gocv.Mat) error
	// WaitKey 等待按键，delay 为 0 时一直阻塞
	WaitKey(delay int) int
	// Close 关闭所有窗口
	Close() error
}

// WindowViewer 基于 OpenCV HighGUI 的窗口展示
type WindowViewer struct {
	windows map[string]*gocv.Window
	order   []string
}

// NewWindowViewer 创建窗口展示器，窗口在首次 Show 时创建
func NewWindowViewer() *WindowViewer {
	return &WindowViewer{
		windows: make(map[string]*gocv.Window),
	}
}

// Show 展示图像
func (v *WindowViewer) Show(title string, img gocv.Mat) error {
	w, ok := v.windows[title]
	if !ok {
		w = gocv.NewWindow(title)
		v.windows[title] = w
		v.order = append(v.order, title)
	}
	return w.IMShow(img)
}

// WaitKey 等待按键，未打开任何窗口时返回 -1
func (v *WindowViewer) WaitKey(delay int) int {
	if len(v.order) == 0 {
		return -1
	}
	return v.windows[v.order[0]].WaitKey(delay)
}

// Close 关闭所有窗口
func (v *WindowViewer) Close() error {
	var errs []error
	for _, title := range v.order {
		if err := v.windows[title].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	v.windows = make(map[string]*gocv.Window)
	v.order = nil
	return errors.Join(errs...)
}
