package cv

import (
	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	// 注册 WebP 解码器，BMP/TIFF 由 imaging 引入
	_ "golang.org/x/image/webp"
)

// decodeFallback 使用 Go 解码器读取图像，并按 EXIF 方向旋正
func decodeFallback(filename string) (gocv.Mat, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return gocv.Mat{}, err
	}
	return ImageToMat(img)
}
