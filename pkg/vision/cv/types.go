package cv

import (
	"fmt"
	"image"
)

// Point 表示二维坐标点
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPoint 创建新的 Point
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// String 以 "(x, y)" 形式输出
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rectangle 表示矩形区域（四个角点）
type Rectangle struct {
	TopLeft     Point `json:"top_left"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
	TopRight    Point `json:"top_right"`
}

// NewRectangle 从左上角坐标和宽高创建矩形
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{
		TopLeft:     Point{X: x, Y: y},
		BottomLeft:  Point{X: x, Y: y + h},
		BottomRight: Point{X: x + w, Y: y + h},
		TopRight:    Point{X: x + w, Y: y},
	}
}

// Width 返回矩形宽度
func (r Rectangle) Width() int {
	return r.TopRight.X - r.TopLeft.X
}

// Height 返回矩形高度
func (r Rectangle) Height() int {
	return r.BottomLeft.Y - r.TopLeft.Y
}

// ToImageRect 转换为 image.Rectangle
func (r Rectangle) ToImageRect() image.Rectangle {
	return image.Rect(r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
}

// MatchResult 模板匹配结果
//
// 坐标均为源图像坐标系下的左上角位置。
type MatchResult struct {
	// MinLoc 得分最低的位置
	MinLoc Point `json:"min_loc"`
	// MaxLoc 得分最高的位置（最佳匹配）
	MaxLoc Point `json:"max_loc"`
	// MinVal 最低得分
	MinVal float64 `json:"min_val"`
	// MaxVal 最高得分
	MaxVal float64 `json:"max_val"`
	// Width 匹配区域宽度（搜索图像宽度）
	Width int `json:"width"`
	// Height 匹配区域高度（搜索图像高度）
	Height int `json:"height"`
	// Time 匹配耗时（毫秒）
	Time float64 `json:"time,omitempty"`
}

// Rectangle 返回以最佳匹配位置为左上角的匹配区域
func (r MatchResult) Rectangle() Rectangle {
	return NewRectangle(r.MaxLoc.X, r.MaxLoc.Y, r.Width, r.Height)
}

// Sized 可获取行列数的图像
// *gocv.Mat 满足该接口
type Sized interface {
	Rows() int
	Cols() int
}
