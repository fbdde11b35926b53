// Package cv 提供基于 gocv 的图像匹配功能
//
// 包含以下能力:
//   - 图像读取 (OpenCV 解码，失败时回退到 Go 解码器)
//   - 模板匹配 (TM_CCOEFF_NORMED，返回得分面的最小/最大值位置)
//   - 匹配区域高亮 (Spotlight)
//   - 窗口展示 (Viewer)
//
// 基本用法:
//
//	source, _ := cv.ReadImage("puzzle.png")
//	search, _ := cv.ReadImage("waldo.png")
//	defer source.Close()
//	defer search.Close()
//
//	result, err := cv.NewTemplateMatching(search, source).FindExtremes()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("最佳位置: %s\n", result.MaxLoc)
package cv
