package cv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Spotlight 生成高亮图: 整体按 alpha 与黑色图层混合变暗，rect 区域保留原像素
// rect 超出图像部分会被裁掉
func Spotlight(src gocv.Mat, rect image.Rectangle, alpha float64) (gocv.Mat, error) {
	mask := gocv.Zeros(src.Rows(), src.Cols(), src.Type())
	defer mask.Close()

	dst := gocv.NewMat()
	if err := gocv.AddWeighted(src, alpha, mask, 1-alpha, 0, &dst); err != nil {
		dst.Close()
		return gocv.Mat{}, fmt.Errorf("图像混合失败: %w", err)
	}

	rect = rect.Intersect(image.Rect(0, 0, src.Cols(), src.Rows()))
	if rect.Empty() {
		return dst, nil
	}

	roi := src.Region(rect)
	defer roi.Close()
	dstRoi := dst.Region(rect)
	defer dstRoi.Close()
	if err := roi.CopyTo(&dstRoi); err != nil {
		dst.Close()
		return gocv.Mat{}, fmt.Errorf("复制匹配区域失败: %w", err)
	}

	return dst, nil
}
