// Package subimage 在原图中查找裁剪图的位置
//
// 基本用法:
//
//	pair, err := subimage.New("waldo.png", "puzzle.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pair.Close()
//
//	if err := pair.FindMatch(); err != nil {
//	    log.Fatal(err)
//	}
//	pair.TellTopLeft(os.Stdout)
package subimage

import (
	"fmt"
	"io"
	"os"

	"gocv.io/x/gocv"

	"github.com/Alir3z4/waldo/internal/logger"
	"github.com/Alir3z4/waldo/pkg/vision/cv"
)

// ExitHint 展示窗口时输出的提示
const ExitHint = "Exit with pressing 0 (zero)."

// 窗口标题
const (
	OriginalWindowTitle = "Original"
	CroppedWindowTitle  = "Cropped"
)

// ImagePair 一对图像: 原图与从中裁剪出的图
// 非并发安全
type ImagePair struct {
	// Original 较大的图像（行列和更大）
	Original gocv.Mat
	// Cropped 较小的图像
	Cropped gocv.Mat

	opts   options
	result *cv.MatchResult
}

// New 读取两张图像并按尺寸排序
// 按参数顺序检查文件是否存在，均存在后才解码
func New(firstImagePath, secondImagePath string, opts ...Option) (*ImagePair, error) {
	for _, path := range []string{firstImagePath, secondImagePath} {
		if _, err := os.Stat(path); err != nil {
			return nil, &FileNotFoundError{Path: path}
		}
	}

	first, err := cv.ReadImage(firstImagePath)
	if err != nil {
		return nil, err
	}
	second, err := cv.ReadImage(secondImagePath)
	if err != nil {
		first.Close()
		return nil, err
	}

	original, cropped := OrderImages(&first, &second)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &ImagePair{
		Original: *original,
		Cropped:  *cropped,
		opts:     o,
	}

	ow, oh := cv.GetResolution(p.Original)
	cw, ch := cv.GetResolution(p.Cropped)
	logger.Debug("图像已加载: original=%dx%d cropped=%dx%d", ow, oh, cw, ch)

	return p, nil
}

// OrderImages 返回 (原图, 裁剪图)
// first 的行列和严格大于 second 时 first 为原图，否则 second 为原图（相等时 second 胜出）
func OrderImages[T cv.Sized](first, second T) (original, cropped T) {
	if first.Rows()+first.Cols() > second.Rows()+second.Cols() {
		return first, second
	}
	return second, first
}

// FindMatch 在原图中查找裁剪图
func (p *ImagePair) FindMatch() error {
	result, err := cv.NewTemplateMatching(p.Cropped, p.Original).FindExtremes()
	if err != nil {
		logger.LogEvent("tpl", false, 0, err.Error())
		return err
	}

	p.result = result
	logger.LogEvent("tpl", true, result.Time,
		fmt.Sprintf("max=%s(%.4f) min=%s(%.4f) size=%dx%d",
			result.MaxLoc, result.MaxVal, result.MinLoc, result.MinVal, result.Width, result.Height))
	return nil
}

// Result 返回最近一次匹配结果
func (p *ImagePair) Result() (cv.MatchResult, bool) {
	if p.result == nil {
		return cv.MatchResult{}, false
	}
	return *p.result, true
}

// TellTopLeft 输出左上角位置
// 输出的是得分最低的位置 MinLoc
func (p *ImagePair) TellTopLeft(w io.Writer) error {
	if p.result == nil {
		return ErrNotMatched
	}
	_, err := fmt.Fprintf(w, "Top Left: %s\n", p.result.MinLoc)
	return err
}

// Display 在窗口中展示匹配结果，并阻塞等待按键
// 原图中除匹配区域外整体变暗，缩放到展示尺寸; 裁剪图原样展示
func (p *ImagePair) Display(viewer cv.Viewer, w io.Writer) error {
	if p.result == nil {
		return ErrNotMatched
	}

	rect := p.result.Rectangle().ToImageRect()
	spotlight, err := cv.Spotlight(p.Original, rect, p.opts.alpha)
	if err != nil {
		return err
	}
	defer spotlight.Close()

	resized, err := cv.ResizeImage(spotlight, p.opts.displayWidth, p.opts.displayHeight)
	if err != nil {
		return err
	}
	defer resized.Close()

	if err := viewer.Show(OriginalWindowTitle, resized); err != nil {
		return fmt.Errorf("展示原图失败: %w", err)
	}
	if err := viewer.Show(CroppedWindowTitle, p.Cropped); err != nil {
		return fmt.Errorf("展示裁剪图失败: %w", err)
	}

	if _, err := fmt.Fprintln(w, ExitHint); err != nil {
		return err
	}

	key := viewer.WaitKey(0)
	logger.Debug("窗口已关闭, key=%d", key)
	return nil
}

// Close 释放图像资源
func (p *ImagePair) Close() {
	p.Original.Close()
	p.Cropped.Close()
}
