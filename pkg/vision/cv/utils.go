package cv

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// DecodeError 图像解码错误
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("无法读取图像: %s", e.Path)
	}
	return fmt.Sprintf("无法读取图像: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadImage 读取彩色图像文件 (BGR)
// OpenCV 无法解码时回退到 Go 解码器
func ReadImage(filename string) (gocv.Mat, error) {
	mat := gocv.IMRead(filename, gocv.IMReadColor)
	if !mat.Empty() {
		return mat, nil
	}
	mat.Close()

	fallback, err := decodeFallback(filename)
	if err != nil {
		return gocv.Mat{}, &DecodeError{Path: filename, Err: err}
	}
	return fallback, nil
}

// WriteImage 保存图像文件
func WriteImage(filename string, img gocv.Mat) error {
	// 确保目录存在
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	if ok := gocv.IMWrite(filename, img); !ok {
		return fmt.Errorf("保存图像失败: %s", filename)
	}
	return nil
}

// GetResolution 获取图像分辨率 (width, height)
func GetResolution(img gocv.Mat) (int, int) {
	return img.Cols(), img.Rows()
}

// CropImage 裁剪图像
// rect: [xMin, yMin, xMax, yMax]
func CropImage(img gocv.Mat, rect [4]int) gocv.Mat {
	xMin, yMin, xMax, yMax := rect[0], rect[1], rect[2], rect[3]

	// 边界检查
	xMin = max(xMin, 0)
	yMin = max(yMin, 0)
	xMax = min(xMax, img.Cols())
	yMax = min(yMax, img.Rows())

	region := img.Region(image.Rect(xMin, yMin, xMax, yMax))
	defer region.Close()
	return region.Clone()
}

// ResizeImage 调整图像大小
func ResizeImage(img gocv.Mat, width, height int) (gocv.Mat, error) {
	dst := gocv.NewMat()
	if err := gocv.Resize(img, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationLinear); err != nil {
		dst.Close()
		return gocv.Mat{}, fmt.Errorf("缩放图像失败: %w", err)
	}
	return dst, nil
}

// ImageToMat 将 image.Image 转换为 BGR 排列的 gocv.Mat
func ImageToMat(img image.Image) (gocv.Mat, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("图像转换失败: %w", err)
	}
	return mat, nil
}
