package subimage

import (
	"errors"
	"fmt"
)

// ErrNotMatched 在 FindMatch 成功之前调用 Display
var ErrNotMatched = errors.New("尚未执行匹配")

// FileNotFoundError 图像文件不存在
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("Image file %s cannot be found.", e.Path)
}
