package cv

import (
	"errors"
	"fmt"
	"time"

	"gocv.io/x/gocv"
)

// ErrEmptyImage 源图像或搜索图像面积为零
var ErrEmptyImage = errors.New("图像为空")

// TemplateMatching 模板匹配器
// 使用 TM_CCOEFF_NORMED 在彩色图像上滑动搜索
type TemplateMatching struct {
	imSearch gocv.Mat
	imSource gocv.Mat
}

// NewTemplateMatching 创建模板匹配器
func NewTemplateMatching(search, source gocv.Mat) *TemplateMatching {
	return &TemplateMatching{
		imSearch: search,
		imSource: source,
	}
}

// FindExtremes 计算得分面并返回最低与最高得分的位置
func (t *TemplateMatching) FindExtremes() (*MatchResult, error) {
	startTime := time.Now()

	if err := checkImages(t.imSource, t.imSearch); err != nil {
		return nil, err
	}

	result, err := t.getTemplateResultMatrix()
	if err != nil {
		return nil, err
	}
	defer result.Close()

	minVal, maxVal, minLoc, maxLoc := gocv.MinMaxLoc(result)

	return &MatchResult{
		MinLoc: Point{X: minLoc.X, Y: minLoc.Y},
		MaxLoc: Point{X: maxLoc.X, Y: maxLoc.Y},
		MinVal: float64(minVal),
		MaxVal: float64(maxVal),
		Width:  t.imSearch.Cols(),
		Height: t.imSearch.Rows(),
		Time:   float64(time.Since(startTime).Microseconds()) / 1000,
	}, nil
}

// getTemplateResultMatrix 计算模板匹配结果矩阵
func (t *TemplateMatching) getTemplateResultMatrix() (gocv.Mat, error) {
	mask := gocv.NewMat()
	defer mask.Close()

	result := gocv.NewMat()
	if err := gocv.MatchTemplate(t.imSource, t.imSearch, &result, gocv.TmCcoeffNormed, mask); err != nil {
		result.Close()
		return gocv.Mat{}, fmt.Errorf("模板匹配失败: %w", err)
	}
	if result.Empty() {
		result.Close()
		return gocv.Mat{}, ErrEmptyImage
	}

	return result, nil
}

// checkImages 检查图像非空且源图像不小于搜索图像
func checkImages(source, search gocv.Mat) error {
	if source.Empty() || search.Empty() || source.Rows() == 0 || source.Cols() == 0 ||
		search.Rows() == 0 || search.Cols() == 0 {
		return ErrEmptyImage
	}
	if source.Rows() < search.Rows() || source.Cols() < search.Cols() {
		return &ImageSizeError{
			SourceSize: [2]int{source.Cols(), source.Rows()},
			SearchSize: [2]int{search.Cols(), search.Rows()},
		}
	}
	return nil
}

// ImageSizeError 图像尺寸错误
type ImageSizeError struct {
	SourceSize [2]int
	SearchSize [2]int
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("搜索图像尺寸大于源图像: 源 %dx%d, 搜索 %dx%d",
		e.SourceSize[0], e.SourceSize[1], e.SearchSize[0], e.SearchSize[1])
}
